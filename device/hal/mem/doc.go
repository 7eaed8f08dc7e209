// Package mem provides an in-memory implementation of the softuac device
// contract's allocator and endpoint types.
//
// Endpoints are bounded packet queues with a device side (Read/Write) and a
// host side (Push/Pop). Both sides are non-blocking, mirroring the polling
// model real device stacks expose: an empty queue reads as pkg.ErrNoData
// and a full queue writes as pkg.ErrBufferFull.
//
// The package exists for tests and examples; it performs no I/O.
package mem
