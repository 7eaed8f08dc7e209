// Package device defines the contract between a USB device-stack framework
// and the class functions layered on top of it.
//
// The framework owns enumeration, transfer scheduling, and endpoint
// buffering. A class function sees the framework only through the types in
// this package:
//
//   - [Allocator] hands out interface numbers and [Endpoint] handles exactly
//     once, while the function is being built
//   - [DescriptorWriter] collects the function's configuration descriptors
//     during enumeration
//   - [ControlIn] and [ControlOut] carry one control transfer each into the
//     function's dispatch entry points
//
// A class function implements [Function]; the framework calls its methods
// strictly serially, so functions perform no locking of their own.
//
// # Zero-Allocation Design
//
// Serialization uses MarshalTo(buf) with caller-provided buffers, parse
// functions take output parameters, and the descriptor writer appends into a
// fixed buffer owned by the framework. Control transfer replies are copied
// into fixed reply storage inside [ControlIn].
//
// # Unhandled Requests
//
// A function that does not recognize a control request simply returns
// without accepting the transfer. The framework applies its default
// handling, typically a protocol stall.
package device
