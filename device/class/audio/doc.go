// Package audio implements a USB Audio Class 2.0 (UAC2) function for
// device-stack frameworks that speak the softuac device contract.
//
// The function presents one Audio Control interface, an internal fixed
// clock source, and up to two Audio Streaming interfaces: an input stream
// carrying captured audio to the host and an output stream carrying
// playback audio from it. Each streaming interface has a zero-bandwidth
// alternate setting 0 and a single active alternate setting 1 with one
// asynchronous isochronous endpoint.
//
// # Architecture
//
//   - [StreamConfig] describes one direction: sample format, rate, channel
//     count, and physical terminal classification
//   - [AudioStream] binds a configuration to its allocated interface and
//     endpoint and emits that direction's descriptors
//   - [AudioClass] aggregates the descriptor set, dispatches control
//     transfers, and passes audio bytes through to the endpoints
//   - [Builder] collects configurations and performs all allocation
//
// # Usage
//
//	capture := audio.NewStreamConfig(audio.FormatS16LE, 48000, 2, audio.TerminalMicrophone)
//	playback := audio.NewStreamConfig(audio.FormatS16LE, 48000, 2, audio.TerminalSpeaker)
//
//	ac, err := audio.NewBuilder().
//	    Input(capture).
//	    Output(playback).
//	    Build(allocator)
//	if err != nil {
//	    // Allocation exhausted
//	}
//
//	// Framework side: descriptors and control dispatch
//	ac.WriteConfigurationDescriptors(writer)
//	ac.ControlIn(xfer)
//
//	// Data path: one non-blocking attempt per call
//	n, err := ac.Write(captureFrames)
//	n, err = ac.Read(playbackBuf)
//
// # Packet Sizing
//
// The isochronous maximum packet size is one millisecond of audio plus one
// extra sample per channel, so an asynchronous clock running slightly fast
// never overruns the reserved bandwidth:
//
//	(rate/1000 + 1) × channels × bytesPerSample
//
// # Out of Scope
//
// USB Audio Class 1.0, feature units (volume/mute), multiple clock
// sources, and MIDI streaming are not implemented.
package audio
