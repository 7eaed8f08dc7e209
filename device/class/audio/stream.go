package audio

import (
	"github.com/ardnew/softuac/device"
	"github.com/ardnew/softuac/pkg"
)

// Direction selects which way a stream carries audio data.
type Direction uint8

// Stream directions.
const (
	DirectionInput  Direction = iota // Device captures audio (device to host)
	DirectionOutput                  // Device renders audio (host to device)
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == DirectionOutput {
		return "output"
	}
	return "input"
}

// endpointAttributes returns the isochronous attributes byte for this
// direction. Input streams carry implicit feedback in their transfer
// pattern; output streams are plain asynchronous data sinks.
func (d Direction) endpointAttributes() uint8 {
	attrs := uint8(device.EndpointTypeIsochronous | device.IsoSyncAsync)
	if d == DirectionInput {
		attrs |= device.IsoUsageImplicit
	}
	return attrs
}

// endpointDirection returns the USB endpoint direction bit.
func (d Direction) endpointDirection() uint8 {
	if d == DirectionInput {
		return device.EndpointDirectionIn
	}
	return device.EndpointDirectionOut
}

// AudioStream binds one direction's stream configuration to its allocated
// interface number and isochronous endpoint. It owns the mutable alternate
// setting state for that interface: 0 is the zero-bandwidth default, 1 the
// single active setting.
type AudioStream struct {
	config          StreamConfig
	direction       Direction
	interfaceNumber uint8
	endpoint        device.Endpoint
	altSetting      uint8
}

// Config returns the stream's configuration.
func (s *AudioStream) Config() StreamConfig {
	return s.config
}

// Direction returns the stream's direction.
func (s *AudioStream) Direction() Direction {
	return s.direction
}

// InterfaceNumber returns the interface number assigned at build time.
func (s *AudioStream) InterfaceNumber() uint8 {
	return s.interfaceNumber
}

// AltSetting returns the interface's current alternate setting.
func (s *AudioStream) AltSetting() uint8 {
	return s.altSetting
}

// Endpoint returns the stream's isochronous endpoint handle.
func (s *AudioStream) Endpoint() device.Endpoint {
	return s.endpoint
}

// terminalID returns the entity ID of the stream's physical terminal.
func (s *AudioStream) terminalID() uint8 {
	if s.direction == DirectionOutput {
		return IDOutputTerminal
	}
	return IDInputTerminal
}

// streamingTerminalID returns the entity ID of the stream's USB streaming
// terminal, which is also the AS interface's terminal link.
func (s *AudioStream) streamingTerminalID() uint8 {
	if s.direction == DirectionOutput {
		return IDOutputStreaming
	}
	return IDInputStreaming
}

// writeControlDescriptors emits the stream's Input/Output Terminal pair on
// the Audio Control interface. For an input stream the physical terminal
// feeds a USB streaming output terminal; for an output stream the pair is
// reversed, with a USB streaming input terminal feeding the physical one.
func (s *AudioStream) writeControlDescriptors(w *device.DescriptorWriter) error {
	inputType := s.config.TerminalType
	outputType := TerminalUSBStreaming
	inputID := s.terminalID()
	outputID := s.streamingTerminalID()
	if s.direction == DirectionOutput {
		inputType, outputType = outputType, inputType
		inputID, outputID = s.streamingTerminalID(), s.terminalID()
	}

	err := w.Write(device.DescriptorTypeCSInterface, []byte{
		ACSubtypeInputTerminal,
		inputID,
		inputType.Lo(), // terminal type
		inputType.Hi(),
		0x00, // associated terminal (none)
		IDClockSource,
		s.config.Channels,      // logical channels
		0x00, 0x00, 0x00, 0x00, // spatial channel config (none)
		0x00,       // channel names string index (none)
		0x00, 0x00, // bmControls (none)
		0x00, // terminal string index (none)
	})
	if err != nil {
		return err
	}

	return w.Write(device.DescriptorTypeCSInterface, []byte{
		ACSubtypeOutputTerminal,
		outputID,
		outputType.Lo(), // terminal type
		outputType.Hi(),
		0x00,    // associated terminal (none)
		inputID, // source is the input terminal above
		IDClockSource,
		0x00, 0x00, // bmControls (none)
		0x00, // terminal string index (none)
	})
}

// writeStreamingDescriptors emits the stream's complete Audio Streaming
// block: the zero-bandwidth alternate setting 0, the active alternate
// setting 1 with its class-specific general and format descriptors, and the
// isochronous endpoint pair.
func (s *AudioStream) writeStreamingDescriptors(w *device.DescriptorWriter) error {
	// Alternate setting 0: zero bandwidth, no endpoints.
	alt0Protocol := uint8(ProtocolIPVersion0200)
	if s.direction == DirectionOutput {
		alt0Protocol = ProtocolUndefined
	}
	err := w.WriteInterface(s.interfaceNumber, device.ClassAudio, SubclassAudioStreaming, alt0Protocol)
	if err != nil {
		return err
	}

	// Alternate setting 1: one isochronous data endpoint.
	err = w.Write(device.DescriptorTypeInterface, []byte{
		s.interfaceNumber,
		0x01, // alternate setting
		0x01, // one data endpoint
		device.ClassAudio,
		SubclassAudioStreaming,
		ProtocolIPVersion0200,
		0x00, // string index (none)
	})
	if err != nil {
		return err
	}

	err = w.Write(device.DescriptorTypeCSInterface, []byte{
		ASSubtypeGeneral,
		s.streamingTerminalID(), // terminal link
		0x00,                    // bmControls (none)
		FormatTypeI,
		0x01, 0x00, 0x00, 0x00, // audio data formats (PCM only)
		s.config.Channels,
		0x00, 0x00, 0x00, 0x00, // spatial channel config (none)
		0x00, // channel names string index (none)
	})
	if err != nil {
		return err
	}

	err = w.Write(device.DescriptorTypeCSInterface, []byte{
		ASSubtypeFormatType,
		FormatTypeI,
		s.config.Format.Size(),
		s.config.Format.Resolution(),
	})
	if err != nil {
		return err
	}

	packetSize := s.config.PacketSize()
	err = w.Write(device.DescriptorTypeEndpoint, []byte{
		s.endpoint.Address(),
		s.direction.endpointAttributes(),
		uint8(packetSize), // wMaxPacketSize
		uint8(packetSize >> 8),
		s.endpoint.Interval(),
	})
	if err != nil {
		return err
	}

	err = w.Write(device.DescriptorTypeCSEndpoint, []byte{
		EPSubtypeGeneral,
		0x00,       // bmAttributes (none)
		0x00,       // bmControls (none)
		0x00,       // bLockDelayUnits (undefined)
		0x00, 0x00, // wLockDelay
	})
	if err != nil {
		return err
	}

	pkg.LogDebug(pkg.ComponentDescriptor, "audio streaming block written",
		"direction", s.direction.String(),
		"interface", s.interfaceNumber,
		"endpoint", s.endpoint.Address(),
		"maxPacket", packetSize)

	return nil
}
