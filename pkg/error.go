package pkg

import "errors"

// Transport errors. These originate in the endpoint or allocator layer and
// are passed through the audio class unchanged.
var (
	// ErrNoData indicates no packet is buffered on an OUT endpoint.
	ErrNoData = errors.New("no data available")

	// ErrBufferFull indicates an IN endpoint cannot accept another packet.
	ErrBufferFull = errors.New("buffer full")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNoMemory indicates an allocation request could not be satisfied.
	ErrNoMemory = errors.New("insufficient memory")

	// ErrInvalidEndpoint indicates an invalid endpoint address or direction.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Class errors.
var (
	// ErrStreamNotInitialized indicates the requested stream direction was
	// never configured on the audio function.
	ErrStreamNotInitialized = errors.New("stream not initialized")
)
