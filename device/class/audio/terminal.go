package audio

import "fmt"

// TerminalType classifies an audio terminal in the function's topology
// (USB Audio Terminal Types Spec). The value is the 2-byte wire code.
type TerminalType uint16

// USB terminal types (Terminal Types Spec Table 2-1).
const (
	TerminalUSBUndefined      TerminalType = 0x0100
	TerminalUSBStreaming      TerminalType = 0x0101
	TerminalUSBVendorSpecific TerminalType = 0x01FF
)

// Input terminal types (Terminal Types Spec Table 2-2).
const (
	TerminalInputUndefined    TerminalType = 0x0200
	TerminalMicrophone        TerminalType = 0x0201
	TerminalDesktopMicrophone TerminalType = 0x0202
	TerminalPersonalMic       TerminalType = 0x0203
	TerminalOmniMic           TerminalType = 0x0204
	TerminalMicArray          TerminalType = 0x0205
	TerminalProcessingMic     TerminalType = 0x0206
)

// Output terminal types (Terminal Types Spec Table 2-3).
const (
	TerminalOutputUndefined TerminalType = 0x0300
	TerminalSpeaker         TerminalType = 0x0301
	TerminalHeadphones      TerminalType = 0x0302
	TerminalHeadMounted     TerminalType = 0x0303
	TerminalDesktopSpeaker  TerminalType = 0x0304
	TerminalRoomSpeaker     TerminalType = 0x0305
	TerminalCommSpeaker     TerminalType = 0x0306
	TerminalLFESpeaker      TerminalType = 0x0307
)

// Bidirectional terminal types (Terminal Types Spec Table 2-4).
const (
	TerminalBidiUndefined  TerminalType = 0x0400
	TerminalHandset        TerminalType = 0x0401
	TerminalHeadset        TerminalType = 0x0402
	TerminalSpeakerphone   TerminalType = 0x0403
	TerminalEchoSupPhone   TerminalType = 0x0404
	TerminalEchoCancelling TerminalType = 0x0405
)

// External terminal types (Terminal Types Spec Table 2-6).
const (
	TerminalExternalUndefined TerminalType = 0x0600
	TerminalAnalogConnector   TerminalType = 0x0601
	TerminalDigitalInterface  TerminalType = 0x0602
	TerminalLineConnector     TerminalType = 0x0603
	TerminalLegacyConnector   TerminalType = 0x0604
	TerminalSPDIF             TerminalType = 0x0605
	Terminal1394DA            TerminalType = 0x0606
	Terminal1394DV            TerminalType = 0x0607
)

// Lo returns the low byte of the wire code.
func (t TerminalType) Lo() uint8 {
	return uint8(t)
}

// Hi returns the high byte of the wire code.
func (t TerminalType) Hi() uint8 {
	return uint8(t >> 8)
}

// String returns a human-readable terminal type name.
func (t TerminalType) String() string {
	switch t {
	case TerminalUSBStreaming:
		return "USB Streaming"
	case TerminalMicrophone:
		return "Microphone"
	case TerminalDesktopMicrophone:
		return "Desktop Microphone"
	case TerminalMicArray:
		return "Microphone Array"
	case TerminalSpeaker:
		return "Speaker"
	case TerminalHeadphones:
		return "Headphones"
	case TerminalDesktopSpeaker:
		return "Desktop Speaker"
	case TerminalHandset:
		return "Handset"
	case TerminalHeadset:
		return "Headset"
	case TerminalLineConnector:
		return "Line Connector"
	case TerminalSPDIF:
		return "S/PDIF Interface"
	default:
		return fmt.Sprintf("TerminalType(0x%04X)", uint16(t))
	}
}
