package audio

import (
	"encoding/binary"

	"github.com/ardnew/softuac/device"
	"github.com/ardnew/softuac/pkg"
)

// AudioClass is a USB Audio Class 2.0 function with an optional input
// (capture) stream and an optional output (playback) stream sharing one
// Audio Control interface and one internal fixed clock source.
//
// The device-stack framework invokes the descriptor and control entry
// points strictly serially; the class performs no locking and assumes
// exclusive access to its own state.
type AudioClass struct {
	controlInterface uint8
	input            *AudioStream
	output           *AudioStream

	// clockRangeSent tracks the two-step clock frequency range query: the
	// first GET_RANGE reply carries only the sub-range count, every later
	// one the full sub-range data.
	// TODO: clear clockRangeSent when the host releases the interface; a
	// host issuing the query sequence twice sees desynchronized replies.
	clockRangeSent bool
}

// ControlInterface returns the Audio Control interface number.
func (a *AudioClass) ControlInterface() uint8 {
	return a.controlInterface
}

// InputStream returns the input stream, or nil if not configured.
func (a *AudioClass) InputStream() *AudioStream {
	return a.input
}

// OutputStream returns the output stream, or nil if not configured.
func (a *AudioClass) OutputStream() *AudioStream {
	return a.output
}

// Read reads audio frames sent by the host from the output stream's
// endpoint. Returns pkg.ErrStreamNotInitialized if no output stream was
// configured; transport errors pass through unchanged.
func (a *AudioClass) Read(buf []byte) (int, error) {
	if a.output == nil {
		return 0, pkg.ErrStreamNotInitialized
	}
	return a.output.endpoint.Read(buf)
}

// Write writes audio frames for the host to capture to the input stream's
// endpoint. Returns pkg.ErrStreamNotInitialized if no input stream was
// configured; transport errors pass through unchanged.
func (a *AudioClass) Write(data []byte) (int, error) {
	if a.input == nil {
		return 0, pkg.ErrStreamNotInitialized
	}
	return a.input.endpoint.Write(data)
}

// InputAltSetting returns the input interface's current alternate setting.
// Returns pkg.ErrStreamNotInitialized if no input stream was configured.
func (a *AudioClass) InputAltSetting() (uint8, error) {
	if a.input == nil {
		return 0, pkg.ErrStreamNotInitialized
	}
	return a.input.altSetting, nil
}

// OutputAltSetting returns the output interface's current alternate setting.
// Returns pkg.ErrStreamNotInitialized if no output stream was configured.
func (a *AudioClass) OutputAltSetting() (uint8, error) {
	if a.output == nil {
		return 0, pkg.ErrStreamNotInitialized
	}
	return a.output.altSetting, nil
}

// WriteConfigurationDescriptors emits the function's complete descriptor
// set. Order matters: the host audio driver parses sequentially and expects
// every Audio Control descriptor before the first Audio Streaming block.
func (a *AudioClass) WriteConfigurationDescriptors(w *device.DescriptorWriter) error {
	var nInterfaces uint8
	if a.input != nil {
		nInterfaces++
	}
	if a.output != nil {
		nInterfaces++
	}

	// Class-specific AC total: header (9) + clock source (8) + one
	// terminal pair (29) per stream.
	totalLength := uint16(9 + 8 + 29*uint16(nInterfaces))

	// Interface association spanning the control interface and all
	// streaming interfaces.
	err := w.Write(device.DescriptorTypeInterfaceAssociation, []byte{
		a.controlInterface, // first interface
		nInterfaces + 1,    // interface count
		FunctionClassAudio,
		FunctionSubclassUndefined,
		FunctionProtocolAF0200,
		0x00, // string index (none)
	})
	if err != nil {
		return err
	}

	err = w.WriteInterface(a.controlInterface, device.ClassAudio, SubclassAudioControl, ProtocolIPVersion0200)
	if err != nil {
		return err
	}

	err = w.Write(device.DescriptorTypeCSInterface, []byte{
		ACSubtypeHeader,
		0x00, 0x02, // bcdADC 2.00
		0x00, // bCategory (undefined)
		uint8(totalLength),
		uint8(totalLength >> 8),
		0x00, // bmControls (none)
	})
	if err != nil {
		return err
	}

	err = w.Write(device.DescriptorTypeCSInterface, []byte{
		ACSubtypeClockSource,
		IDClockSource,
		ClockAttrInternalFixed,
		ClockControlFreqRead,
		0x00, // associated terminal (none)
		0x00, // string index (none)
	})
	if err != nil {
		return err
	}

	if a.input != nil {
		if err := a.input.writeControlDescriptors(w); err != nil {
			return err
		}
	}
	if a.output != nil {
		if err := a.output.writeControlDescriptors(w); err != nil {
			return err
		}
	}

	if a.input != nil {
		if err := a.input.writeStreamingDescriptors(w); err != nil {
			return err
		}
	}
	if a.output != nil {
		if err := a.output.writeStreamingDescriptors(w); err != nil {
			return err
		}
	}

	pkg.LogDebug(pkg.ComponentDescriptor, "audio configuration descriptors written",
		"interfaces", nInterfaces+1,
		"totalLength", totalLength,
		"bytes", w.Len())

	return nil
}

// ControlIn dispatches a device-to-host control transfer. Recognized
// requests are the standard GET_INTERFACE for either stream interface and
// the class-specific clock source frequency queries. Anything else is left
// unhandled for the framework to stall.
func (a *AudioClass) ControlIn(xfer *device.ControlIn) {
	setup := &xfer.Setup

	switch {
	case setup.IsStandard() && setup.IsInterfaceRecipient() &&
		setup.Request == device.RequestGetInterface && setup.Length == 1:
		a.getInterface(xfer)

	case setup.IsClass() && setup.IsInterfaceRecipient() &&
		setup.EntityID() == IDClockSource &&
		setup.ControlSelector() == ControlSelectorClockFrequency:
		a.clockFrequency(xfer)
	}
}

// getInterface answers GET_INTERFACE for a stream interface with its
// current alternate setting.
func (a *AudioClass) getInterface(xfer *device.ControlIn) {
	iface := xfer.Setup.InterfaceNumber()

	if a.input != nil && iface == a.input.interfaceNumber {
		xfer.Accept([]byte{a.input.altSetting})
		return
	}
	if a.output != nil && iface == a.output.interfaceNumber {
		xfer.Accept([]byte{a.output.altSetting})
		return
	}
}

// clockFrequency answers the clock source's CUR and RANGE queries. The
// range reply is staged: the count alone first, the full sub-range data on
// every later query.
func (a *AudioClass) clockFrequency(xfer *device.ControlIn) {
	switch xfer.Setup.Request {
	case RequestRange:
		if !a.clockRangeSent {
			xfer.Accept([]byte{0x01, 0x00}) // one sub-range
			a.clockRangeSent = true
			return
		}
		var reply [14]byte
		binary.LittleEndian.PutUint16(reply[0:2], 1) // sub-range count
		binary.LittleEndian.PutUint32(reply[2:6], ClockFrequencyHz)  // min
		binary.LittleEndian.PutUint32(reply[6:10], ClockFrequencyHz) // max
		binary.LittleEndian.PutUint32(reply[10:14], 1)               // resolution
		xfer.Accept(reply[:])

	case RequestCur:
		var reply [4]byte
		binary.LittleEndian.PutUint32(reply[:], ClockFrequencyHz)
		xfer.Accept(reply[:])
	}
}

// ControlOut dispatches a host-to-device control transfer. The only
// recognized request is the standard SET_INTERFACE for a stream interface;
// anything else is left unhandled.
func (a *AudioClass) ControlOut(xfer *device.ControlOut) {
	setup := &xfer.Setup

	if !setup.IsStandard() || !setup.IsInterfaceRecipient() ||
		setup.Request != device.RequestSetInterface {
		return
	}

	iface := setup.InterfaceNumber()
	alt := uint8(setup.Value)

	if a.input != nil && iface == a.input.interfaceNumber {
		a.input.altSetting = alt
		xfer.Accept()
		pkg.LogDebug(pkg.ComponentControl, "alternate setting changed",
			"direction", "input", "interface", iface, "alt", alt)
		return
	}
	if a.output != nil && iface == a.output.interfaceNumber {
		a.output.altSetting = alt
		xfer.Accept()
		pkg.LogDebug(pkg.ComponentControl, "alternate setting changed",
			"direction", "output", "interface", iface, "alt", alt)
		return
	}
}

// Compile-time interface check
var _ device.Function = (*AudioClass)(nil)
