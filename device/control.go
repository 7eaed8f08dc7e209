package device

import "github.com/ardnew/softuac/pkg"

// MaxControlReplySize is the largest control-in reply a function may stage.
// EP0 transfers larger than this are split by the framework anyway.
const MaxControlReplySize = 64

// ControlIn represents one in-flight device-to-host control transfer.
// The framework builds it from the SETUP packet and hands it to the
// function's ControlIn entry point. The function either accepts it with
// reply data or leaves it untouched; an untouched transfer falls through
// to the framework's default handling (typically a protocol stall).
type ControlIn struct {
	Setup SetupPacket

	reply   [MaxControlReplySize]byte
	replyLn int
	handled bool
}

// NewControlIn creates a control-in transfer for the given SETUP packet.
func NewControlIn(setup SetupPacket) *ControlIn {
	return &ControlIn{Setup: setup}
}

// Accept stages data as the reply and marks the transfer handled.
// The data is truncated to the host-requested length. Returns
// pkg.ErrBufferTooSmall if data exceeds the reply storage.
func (c *ControlIn) Accept(data []byte) error {
	if len(data) > len(c.reply) {
		return pkg.ErrBufferTooSmall
	}
	n := len(data)
	if int(c.Setup.Length) < n {
		n = int(c.Setup.Length)
	}
	copy(c.reply[:n], data[:n])
	c.replyLn = n
	c.handled = true
	return nil
}

// Handled returns true if the function accepted the transfer.
func (c *ControlIn) Handled() bool {
	return c.handled
}

// Reply returns the staged reply data.
// The returned slice references internal storage; do not modify.
func (c *ControlIn) Reply() []byte {
	return c.reply[:c.replyLn]
}

// ControlOut represents one in-flight host-to-device control transfer,
// carrying any OUT-phase data the host sent. The function calls Accept to
// acknowledge it or leaves it untouched.
type ControlOut struct {
	Setup SetupPacket
	Data  []byte

	handled bool
}

// NewControlOut creates a control-out transfer for the given SETUP packet
// and OUT-phase data (nil for zero-length requests).
func NewControlOut(setup SetupPacket, data []byte) *ControlOut {
	return &ControlOut{Setup: setup, Data: data}
}

// Accept marks the transfer handled so the framework acknowledges it.
func (c *ControlOut) Accept() {
	c.handled = true
}

// Handled returns true if the function accepted the transfer.
func (c *ControlOut) Handled() bool {
	return c.handled
}

// Function is the interface a USB class function presents to the
// device-stack framework. The framework invokes these entry points strictly
// serially: once per enumeration pass for descriptors, and once per incoming
// control transfer addressed to the function's interfaces.
type Function interface {
	// WriteConfigurationDescriptors emits the function's complete
	// configuration descriptor set.
	WriteConfigurationDescriptors(w *DescriptorWriter) error

	// ControlIn dispatches a device-to-host control transfer.
	ControlIn(xfer *ControlIn)

	// ControlOut dispatches a host-to-device control transfer.
	ControlOut(xfer *ControlOut)
}
