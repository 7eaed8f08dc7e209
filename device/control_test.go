package device

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ardnew/softuac/pkg"
)

func TestControlInUnhandledByDefault(t *testing.T) {
	var setup SetupPacket
	GetInterfaceSetup(&setup, 1)

	xfer := NewControlIn(setup)
	if xfer.Handled() {
		t.Error("new transfer should not be handled")
	}
	if len(xfer.Reply()) != 0 {
		t.Errorf("Reply() = % X, want empty", xfer.Reply())
	}
}

func TestControlInAccept(t *testing.T) {
	var setup SetupPacket
	GetInterfaceSetup(&setup, 1)

	xfer := NewControlIn(setup)
	if err := xfer.Accept([]byte{0x01}); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !xfer.Handled() {
		t.Error("transfer should be handled after Accept")
	}
	if !bytes.Equal(xfer.Reply(), []byte{0x01}) {
		t.Errorf("Reply() = % X, want 01", xfer.Reply())
	}
}

func TestControlInAcceptTruncatesToRequestedLength(t *testing.T) {
	setup := SetupPacket{
		RequestType: RequestDirectionDeviceToHost | RequestTypeClass | RequestRecipientInterface,
		Request:     0x02,
		Length:      2,
	}

	xfer := NewControlIn(setup)
	if err := xfer.Accept([]byte{0x01, 0x00, 0xDE, 0xAD}); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !bytes.Equal(xfer.Reply(), []byte{0x01, 0x00}) {
		t.Errorf("Reply() = % X, want 01 00", xfer.Reply())
	}
}

func TestControlInAcceptTooLarge(t *testing.T) {
	xfer := NewControlIn(SetupPacket{Length: 128})
	err := xfer.Accept(make([]byte, MaxControlReplySize+1))
	if !errors.Is(err, pkg.ErrBufferTooSmall) {
		t.Errorf("Accept() error = %v, want %v", err, pkg.ErrBufferTooSmall)
	}
	if xfer.Handled() {
		t.Error("oversized Accept should not mark transfer handled")
	}
}

func TestControlOutAccept(t *testing.T) {
	var setup SetupPacket
	SetInterfaceSetup(&setup, 1, 1)

	xfer := NewControlOut(setup, nil)
	if xfer.Handled() {
		t.Error("new transfer should not be handled")
	}

	xfer.Accept()
	if !xfer.Handled() {
		t.Error("transfer should be handled after Accept")
	}
}
