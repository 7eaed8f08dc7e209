package audio

import "fmt"

// Format identifies a supported PCM sample encoding.
type Format uint8

// Supported sample formats.
const (
	FormatS16LE Format = iota // Signed 16-bit little-endian
	FormatS24LE               // Signed 24-bit little-endian (packed)
)

// Size returns the number of bytes per sample.
func (f Format) Size() uint8 {
	switch f {
	case FormatS24LE:
		return 3
	default:
		return 2
	}
}

// Resolution returns the number of significant bits per sample.
func (f Format) Resolution() uint8 {
	switch f {
	case FormatS24LE:
		return 24
	default:
		return 16
	}
}

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatS16LE:
		return "S16LE"
	case FormatS24LE:
		return "S24LE"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// StreamConfig describes one direction's audio parameters. It is immutable
// once created and consumed by exactly one stream at build time.
//
// No range validation is performed on Rate or Channels; the caller is
// responsible for USB-Audio-legal values.
type StreamConfig struct {
	Format       Format       // Sample encoding
	Rate         uint16       // Sample rate in Hz
	Channels     uint8        // Logical channel count (>= 1)
	TerminalType TerminalType // Physical terminal classification
}

// NewStreamConfig creates a stream configuration.
func NewStreamConfig(format Format, rate uint16, channels uint8, terminalType TerminalType) StreamConfig {
	return StreamConfig{
		Format:       format,
		Rate:         rate,
		Channels:     channels,
		TerminalType: terminalType,
	}
}

// PacketSize returns the isochronous maximum packet size in bytes. One
// millisecond of samples plus one extra sample per channel, reserving
// headroom for asynchronous clock-feedback jitter.
func (c StreamConfig) PacketSize() uint16 {
	frame := uint16(c.Format.Size()) * uint16(c.Channels)
	samples := c.Rate / 1000
	return (samples + 1) * frame
}
