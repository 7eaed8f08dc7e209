package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/softuac/device"
	"github.com/ardnew/softuac/device/hal/mem"
	"github.com/ardnew/softuac/pkg"
)

func isoInConfig() device.EndpointConfig {
	return device.EndpointConfig{
		Direction:     device.EndpointDirectionIn,
		Attributes:    device.EndpointTypeIsochronous | device.IsoSyncAsync | device.IsoUsageImplicit,
		MaxPacketSize: 196,
		Interval:      1,
	}
}

func isoOutConfig() device.EndpointConfig {
	return device.EndpointConfig{
		Direction:     device.EndpointDirectionOut,
		Attributes:    device.EndpointTypeIsochronous | device.IsoSyncAsync,
		MaxPacketSize: 196,
		Interval:      1,
	}
}

func TestInterfaceNumbersSequential(t *testing.T) {
	alloc := mem.NewAllocator()

	for want := uint8(0); want < mem.MaxInterfaces; want++ {
		num, err := alloc.Interface()
		require.NoError(t, err)
		assert.Equal(t, want, num)
	}

	_, err := alloc.Interface()
	assert.ErrorIs(t, err, pkg.ErrNoMemory)
}

func TestEndpointNumbersSequential(t *testing.T) {
	alloc := mem.NewAllocator()

	for num := uint8(1); num <= mem.MaxEndpoints; num++ {
		ep, err := alloc.Endpoint(isoInConfig())
		require.NoError(t, err)
		assert.Equal(t, num|device.EndpointDirectionIn, ep.Address())
	}

	_, err := alloc.Endpoint(isoInConfig())
	assert.ErrorIs(t, err, pkg.ErrNoMemory)
}

func TestEndpointZeroPacketSizeRejected(t *testing.T) {
	alloc := mem.NewAllocator()

	cfg := isoInConfig()
	cfg.MaxPacketSize = 0
	_, err := alloc.Endpoint(cfg)
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}

func TestGetEndpoint(t *testing.T) {
	alloc := mem.NewAllocator()
	ep, err := alloc.Endpoint(isoOutConfig())
	require.NoError(t, err)

	assert.Equal(t, ep, alloc.GetEndpoint(1))
	assert.Nil(t, alloc.GetEndpoint(0))
	assert.Nil(t, alloc.GetEndpoint(2))
	assert.Nil(t, alloc.GetEndpoint(mem.MaxEndpoints+1))
}

func TestEndpointConfigPreserved(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoInConfig())
	require.NoError(t, err)

	ep := alloc.GetEndpoint(1)
	require.NotNil(t, ep)
	assert.Equal(t, uint8(0x25), ep.Attributes())
	assert.Equal(t, uint16(196), ep.MaxPacketSize())
	assert.Equal(t, uint8(1), ep.Interval())
	assert.True(t, ep.IsIn())
}

func TestInEndpointWritePop(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoInConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	// Device queues packets; host drains them in order.
	n, err := ep.Write([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = ep.Write([]byte{0x03})
	require.NoError(t, err)
	assert.Equal(t, 2, ep.Pending())

	pkt, err := ep.Pop()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, pkt)
	pkt, err = ep.Pop()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, pkt)

	_, err = ep.Pop()
	assert.ErrorIs(t, err, pkg.ErrNoData)
}

func TestOutEndpointPushRead(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoOutConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	require.NoError(t, ep.Push([]byte{0xAA, 0xBB, 0xCC}))

	var buf [196]byte
	n, err := ep.Read(buf[:])
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, buf[:n])

	_, err = ep.Read(buf[:])
	assert.ErrorIs(t, err, pkg.ErrNoData)
}

func TestWriteOnOutEndpointRejected(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoOutConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	_, err = ep.Write([]byte{0x00})
	assert.ErrorIs(t, err, pkg.ErrInvalidEndpoint)
}

func TestReadOnInEndpointRejected(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoInConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	var buf [4]byte
	_, err = ep.Read(buf[:])
	assert.ErrorIs(t, err, pkg.ErrInvalidEndpoint)
}

func TestWriteQueueFull(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoInConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	for i := 0; i < mem.DefaultQueueDepth; i++ {
		_, err := ep.Write([]byte{byte(i)})
		require.NoError(t, err)
	}

	_, err = ep.Write([]byte{0xFF})
	assert.ErrorIs(t, err, pkg.ErrBufferFull)

	// Draining one packet frees a slot.
	_, err = ep.Pop()
	require.NoError(t, err)
	_, err = ep.Write([]byte{0xFF})
	assert.NoError(t, err)
}

func TestWriteOversizedPacketRejected(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoInConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	_, err = ep.Write(make([]byte, 197))
	assert.ErrorIs(t, err, pkg.ErrBufferTooSmall)
	assert.Zero(t, ep.Pending())
}

func TestReadBufferTooSmall(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoOutConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	require.NoError(t, ep.Push(make([]byte, 16)))

	var buf [4]byte
	_, err = ep.Read(buf[:])
	assert.ErrorIs(t, err, pkg.ErrBufferTooSmall)
}

func TestPushedPacketIsCopied(t *testing.T) {
	alloc := mem.NewAllocator()
	_, err := alloc.Endpoint(isoOutConfig())
	require.NoError(t, err)
	ep := alloc.GetEndpoint(1)

	data := []byte{0x01, 0x02}
	require.NoError(t, ep.Push(data))
	data[0] = 0xFF

	var buf [4]byte
	n, err := ep.Read(buf[:])
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, buf[:n])
}
