package device

import "fmt"

// Endpoint transfer types (USB 2.0 Spec Table 9-13).
const (
	EndpointTypeControl     = 0x00 // Control transfer
	EndpointTypeIsochronous = 0x01 // Isochronous transfer
	EndpointTypeBulk        = 0x02 // Bulk transfer
	EndpointTypeInterrupt   = 0x03 // Interrupt transfer
)

// Endpoint directions.
const (
	EndpointDirectionOut = 0x00 // Host to device
	EndpointDirectionIn  = 0x80 // Device to host
)

// Isochronous synchronization types (bits 2-3 of Attributes).
const (
	IsoSyncNone     = 0x00 // No synchronization
	IsoSyncAsync    = 0x04 // Asynchronous
	IsoSyncAdaptive = 0x08 // Adaptive
	IsoSyncSync     = 0x0C // Synchronous
)

// Isochronous usage types (bits 4-5 of Attributes).
const (
	IsoUsageData     = 0x00 // Data endpoint
	IsoUsageFeedback = 0x10 // Feedback endpoint
	IsoUsageImplicit = 0x20 // Implicit feedback data endpoint
)

// Endpoint is a handle to one hardware endpoint owned by the device-stack
// framework. A class function receives handles from an [Allocator] at build
// time and holds them for the device's operational lifetime.
//
// Read and Write are non-blocking: each attempts exactly one transfer and
// returns immediately, either with a byte count or with a transport error
// such as pkg.ErrNoData or pkg.ErrBufferFull. Retry policy belongs to the
// caller's polling loop.
type Endpoint interface {
	// Address returns the endpoint address including the direction bit.
	Address() uint8

	// Interval returns the polling interval from the endpoint descriptor.
	Interval() uint8

	// Read reads one packet from an OUT endpoint into buf.
	Read(buf []byte) (int, error)

	// Write writes one packet to an IN endpoint.
	Write(data []byte) (int, error)
}

// EndpointConfig describes a requested endpoint allocation.
type EndpointConfig struct {
	Direction     uint8  // EndpointDirectionIn or EndpointDirectionOut
	Attributes    uint8  // Transfer type and sync/usage flags
	MaxPacketSize uint16 // Maximum packet size
	Interval      uint8  // Polling interval for interrupt/isochronous
}

// TransferType returns the transfer type from the attributes.
func (c *EndpointConfig) TransferType() uint8 {
	return c.Attributes & 0x03
}

// IsIn returns true if this describes an IN endpoint (device to host).
func (c *EndpointConfig) IsIn() bool {
	return c.Direction == EndpointDirectionIn
}

// Allocator hands out the interface numbers and endpoint handles a class
// function needs. It is implemented by the device-stack framework; all
// allocation happens exactly once while the function is built.
type Allocator interface {
	// Interface allocates the next free interface number.
	Interface() (uint8, error)

	// Endpoint allocates an endpoint matching cfg.
	Endpoint(cfg EndpointConfig) (Endpoint, error)
}

// TransferTypeName returns a human-readable transfer type name.
func TransferTypeName(t uint8) string {
	switch t & 0x03 {
	case EndpointTypeControl:
		return "Control"
	case EndpointTypeIsochronous:
		return "Isochronous"
	case EndpointTypeBulk:
		return "Bulk"
	case EndpointTypeInterrupt:
		return "Interrupt"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// DirectionName returns a human-readable direction name.
func DirectionName(dir uint8) string {
	if dir == EndpointDirectionIn {
		return "IN"
	}
	return "OUT"
}
