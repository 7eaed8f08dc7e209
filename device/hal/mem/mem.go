package mem

import (
	"sync"

	"github.com/ardnew/softuac/device"
	"github.com/ardnew/softuac/pkg"
)

// MaxEndpoints is the number of data endpoint numbers available (1-15).
const MaxEndpoints = 15

// MaxInterfaces is the number of interface numbers available.
const MaxInterfaces = 8

// DefaultQueueDepth is the packet queue depth of a new endpoint.
const DefaultQueueDepth = 8

// Allocator implements device.Allocator backed by in-memory endpoints.
// It hands out sequential interface and endpoint numbers and keeps the
// allocated endpoints reachable for the test or host side of a loop.
type Allocator struct {
	nextInterface uint8
	nextEndpoint  uint8
	endpoints     [MaxEndpoints]*Endpoint
	mutex         sync.Mutex
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{nextEndpoint: 1}
}

// Interface allocates the next free interface number.
func (a *Allocator) Interface() (uint8, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.nextInterface >= MaxInterfaces {
		return 0, pkg.ErrNoMemory
	}
	num := a.nextInterface
	a.nextInterface++
	return num, nil
}

// Endpoint allocates an in-memory endpoint matching cfg.
func (a *Allocator) Endpoint(cfg device.EndpointConfig) (device.Endpoint, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if cfg.MaxPacketSize == 0 {
		return nil, pkg.ErrInvalidParameter
	}
	if a.nextEndpoint > MaxEndpoints {
		return nil, pkg.ErrNoMemory
	}

	ep := &Endpoint{
		address:       a.nextEndpoint | cfg.Direction,
		attributes:    cfg.Attributes,
		maxPacketSize: cfg.MaxPacketSize,
		interval:      cfg.Interval,
		depth:         DefaultQueueDepth,
	}
	a.endpoints[a.nextEndpoint-1] = ep
	a.nextEndpoint++

	pkg.LogDebug(pkg.ComponentHAL, "endpoint allocated",
		"address", ep.address,
		"type", device.TransferTypeName(cfg.TransferType()),
		"direction", device.DirectionName(cfg.Direction),
		"maxPacket", cfg.MaxPacketSize)

	return ep, nil
}

// GetEndpoint returns the allocated endpoint with the given number (1-15),
// or nil. Tests and examples use this to reach the host side of a loop.
func (a *Allocator) GetEndpoint(num uint8) *Endpoint {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if num == 0 || num > MaxEndpoints {
		return nil
	}
	return a.endpoints[num-1]
}

// Endpoint implements device.Endpoint with a bounded in-memory packet
// queue. The device side uses Read/Write; the pretend host side uses
// Push/Pop on the other end of the queue. Both sides are non-blocking.
type Endpoint struct {
	address       uint8
	attributes    uint8
	maxPacketSize uint16
	interval      uint8

	queue [][]byte
	depth int
	mutex sync.Mutex
}

// Address returns the endpoint address including the direction bit.
func (e *Endpoint) Address() uint8 {
	return e.address
}

// Attributes returns the endpoint attributes byte.
func (e *Endpoint) Attributes() uint8 {
	return e.attributes
}

// MaxPacketSize returns the allocated maximum packet size.
func (e *Endpoint) MaxPacketSize() uint16 {
	return e.maxPacketSize
}

// Interval returns the polling interval.
func (e *Endpoint) Interval() uint8 {
	return e.interval
}

// IsIn returns true if this is an IN endpoint (device to host).
func (e *Endpoint) IsIn() bool {
	return e.address&device.EndpointDirectionIn != 0
}

// Read takes one queued packet from an OUT endpoint. Returns pkg.ErrNoData
// when the queue is empty and pkg.ErrInvalidEndpoint on an IN endpoint.
func (e *Endpoint) Read(buf []byte) (int, error) {
	if e.IsIn() {
		return 0, pkg.ErrInvalidEndpoint
	}
	pkt, err := e.pop()
	if err != nil {
		return 0, err
	}
	if len(pkt) > len(buf) {
		return 0, pkg.ErrBufferTooSmall
	}
	return copy(buf, pkt), nil
}

// Write queues one packet on an IN endpoint. Returns pkg.ErrBufferFull when
// the queue is full and pkg.ErrInvalidEndpoint on an OUT endpoint.
func (e *Endpoint) Write(data []byte) (int, error) {
	if !e.IsIn() {
		return 0, pkg.ErrInvalidEndpoint
	}
	if len(data) > int(e.maxPacketSize) {
		return 0, pkg.ErrBufferTooSmall
	}
	if err := e.push(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Push queues a packet from the host side (OUT endpoints).
func (e *Endpoint) Push(data []byte) error {
	if len(data) > int(e.maxPacketSize) {
		return pkg.ErrBufferTooSmall
	}
	return e.push(data)
}

// Pop takes a queued packet from the host side (IN endpoints).
// Returns pkg.ErrNoData when nothing is queued.
func (e *Endpoint) Pop() ([]byte, error) {
	return e.pop()
}

// Pending returns the number of queued packets.
func (e *Endpoint) Pending() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return len(e.queue)
}

// push copies data onto the queue, honoring the depth bound.
func (e *Endpoint) push(data []byte) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if len(e.queue) >= e.depth {
		return pkg.ErrBufferFull
	}
	pkt := make([]byte, len(data))
	copy(pkt, data)
	e.queue = append(e.queue, pkt)
	return nil
}

// pop removes the oldest packet from the queue.
func (e *Endpoint) pop() ([]byte, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if len(e.queue) == 0 {
		return nil, pkg.ErrNoData
	}
	pkt := e.queue[0]
	e.queue = e.queue[1:]
	return pkt, nil
}

// Compile-time interface checks
var (
	_ device.Allocator = (*Allocator)(nil)
	_ device.Endpoint  = (*Endpoint)(nil)
)
