package audio

// Audio interface subclass codes (UAC2 Spec A.5).
const (
	SubclassUndefined      = 0x00 // Undefined
	SubclassAudioControl   = 0x01 // Audio Control
	SubclassAudioStreaming = 0x02 // Audio Streaming
	SubclassMIDIStreaming  = 0x03 // MIDI Streaming
)

// Audio interface protocol codes (UAC2 Spec A.6).
const (
	ProtocolUndefined     = 0x00 // Undefined
	ProtocolIPVersion0200 = 0x20 // Interface Protocol version 2.00
)

// Audio function class codes (UAC2 Spec A.1-A.3).
const (
	FunctionClassAudio        = 0x01 // Audio Function
	FunctionSubclassUndefined = 0x00 // Undefined function subclass
	FunctionProtocolAF0200    = 0x20 // Audio Function version 2.00
)

// Audio Control interface descriptor subtypes (UAC2 Spec A.9).
const (
	ACSubtypeHeader         = 0x01 // HEADER
	ACSubtypeInputTerminal  = 0x02 // INPUT_TERMINAL
	ACSubtypeOutputTerminal = 0x03 // OUTPUT_TERMINAL
	ACSubtypeClockSource    = 0x0A // CLOCK_SOURCE
)

// Audio Streaming interface descriptor subtypes (UAC2 Spec A.10).
const (
	ASSubtypeGeneral    = 0x01 // AS_GENERAL
	ASSubtypeFormatType = 0x02 // FORMAT_TYPE
)

// Audio endpoint descriptor subtypes (UAC2 Spec A.13).
const (
	EPSubtypeGeneral = 0x01 // EP_GENERAL
)

// Format type codes (UAC2 Formats Spec A.1).
const (
	FormatTypeI = 0x01 // Type I PCM
)

// Class-specific request codes (UAC2 Spec A.14).
const (
	RequestCur   = 0x01 // CUR
	RequestRange = 0x02 // RANGE
)

// Clock source control selectors (UAC2 Spec A.17.1).
const (
	ControlSelectorClockFrequency = 0x01 // CS_SAM_FREQ_CONTROL
	ControlSelectorClockValidity  = 0x02 // CS_CLOCK_VALID_CONTROL
)

// Clock source attributes and controls.
const (
	ClockAttrInternalFixed = 0x01 // Internal fixed clock
	ClockControlFreqRead   = 0x01 // Frequency control, read only
)

// Entity IDs for the function's terminal topology. Fixed at compile time so
// the input and output paths never collide on the control interface.
const (
	IDClockSource     = 0x01 // The single internal clock source
	IDInputTerminal   = 0x02 // Input stream: physical input terminal
	IDInputStreaming  = 0x03 // Input stream: USB streaming output terminal
	IDOutputStreaming = 0x04 // Output stream: USB streaming input terminal
	IDOutputTerminal  = 0x05 // Output stream: physical output terminal
)

// ClockFrequencyHz is the nominal frequency reported for the internal fixed
// clock source, both as the current value and as the single sub-range of the
// frequency range query.
const ClockFrequencyHz = 16000
