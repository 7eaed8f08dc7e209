package audio

import (
	"github.com/ardnew/softuac/device"
	"github.com/ardnew/softuac/pkg"
)

// Builder accumulates stream configurations and assembles an AudioClass.
// Zero, one, or both directions may be configured; setting a direction
// twice replaces the earlier configuration. All interface and endpoint
// allocation happens in Build, exactly once.
type Builder struct {
	input  *StreamConfig
	output *StreamConfig
}

// NewBuilder creates a builder with no streams configured.
func NewBuilder() *Builder {
	return &Builder{}
}

// Input configures the capture stream (device to host).
func (b *Builder) Input(cfg StreamConfig) *Builder {
	c := cfg
	b.input = &c
	return b
}

// Output configures the playback stream (host to device).
func (b *Builder) Output(cfg StreamConfig) *Builder {
	c := cfg
	b.output = &c
	return b
}

// Build allocates the control interface and, for each configured direction,
// one streaming interface and one isochronous endpoint sized to the
// direction's packet size. Allocation failures propagate unchanged.
func (b *Builder) Build(alloc device.Allocator) (*AudioClass, error) {
	controlInterface, err := alloc.Interface()
	if err != nil {
		return nil, err
	}

	ac := &AudioClass{controlInterface: controlInterface}

	if b.input != nil {
		ac.input, err = buildStream(alloc, *b.input, DirectionInput)
		if err != nil {
			return nil, err
		}
	}

	if b.output != nil {
		ac.output, err = buildStream(alloc, *b.output, DirectionOutput)
		if err != nil {
			return nil, err
		}
	}

	pkg.LogInfo(pkg.ComponentClass, "audio function built",
		"controlInterface", controlInterface,
		"input", b.input != nil,
		"output", b.output != nil)

	return ac, nil
}

// buildStream allocates one direction's interface and endpoint.
func buildStream(alloc device.Allocator, cfg StreamConfig, dir Direction) (*AudioStream, error) {
	interfaceNumber, err := alloc.Interface()
	if err != nil {
		return nil, err
	}

	endpoint, err := alloc.Endpoint(device.EndpointConfig{
		Direction:     dir.endpointDirection(),
		Attributes:    dir.endpointAttributes(),
		MaxPacketSize: cfg.PacketSize(),
		Interval:      1,
	})
	if err != nil {
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentClass, "audio stream allocated",
		"direction", dir.String(),
		"interface", interfaceNumber,
		"endpoint", endpoint.Address(),
		"maxPacket", cfg.PacketSize())

	return &AudioStream{
		config:          cfg,
		direction:       dir,
		interfaceNumber: interfaceNumber,
		endpoint:        endpoint,
	}, nil
}
