package device

import "testing"

func TestParseSetupPacket(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want SetupPacket
	}{
		{
			name: "GET_INTERFACE",
			data: []byte{0x81, 0x0A, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00},
			want: SetupPacket{
				RequestType: 0x81,
				Request:     RequestGetInterface,
				Value:       0,
				Index:       1,
				Length:      1,
			},
		},
		{
			name: "SET_INTERFACE alt 1",
			data: []byte{0x01, 0x0B, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00},
			want: SetupPacket{
				RequestType: 0x01,
				Request:     RequestSetInterface,
				Value:       1,
				Index:       2,
				Length:      0,
			},
		},
		{
			name: "class clock query",
			data: []byte{0xA1, 0x02, 0x00, 0x01, 0x00, 0x01, 0x0E, 0x00},
			want: SetupPacket{
				RequestType: 0xA1,
				Request:     0x02,
				Value:       0x0100,
				Index:       0x0100,
				Length:      14,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SetupPacket
			if err := ParseSetupPacket(tt.data, &got); err != nil {
				t.Fatalf("ParseSetupPacket() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSetupPacket() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSetupPacketTooShort(t *testing.T) {
	var out SetupPacket
	if err := ParseSetupPacket([]byte{0x81, 0x0A}, &out); err == nil {
		t.Error("ParseSetupPacket() should fail on short data")
	}
}

func TestSetupPacketMarshalRoundTrip(t *testing.T) {
	orig := SetupPacket{
		RequestType: 0xA1,
		Request:     0x01,
		Value:       0x0100,
		Index:       0x0100,
		Length:      4,
	}

	var buf [SetupPacketSize]byte
	if n := orig.MarshalTo(buf[:]); n != SetupPacketSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, SetupPacketSize)
	}

	var parsed SetupPacket
	if err := ParseSetupPacket(buf[:], &parsed); err != nil {
		t.Fatalf("ParseSetupPacket() error = %v", err)
	}
	if parsed != orig {
		t.Errorf("round trip = %+v, want %+v", parsed, orig)
	}
}

func TestSetupPacketPredicates(t *testing.T) {
	tests := []struct {
		name        string
		requestType uint8
		isIn        bool
		isStandard  bool
		isClass     bool
		isInterface bool
	}{
		{"standard interface IN", 0x81, true, true, false, true},
		{"standard interface OUT", 0x01, false, true, false, true},
		{"class interface IN", 0xA1, true, false, true, true},
		{"standard device OUT", 0x00, false, true, false, false},
		{"vendor endpoint IN", 0xC2, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SetupPacket{RequestType: tt.requestType}
			if got := s.IsDeviceToHost(); got != tt.isIn {
				t.Errorf("IsDeviceToHost() = %v, want %v", got, tt.isIn)
			}
			if got := s.IsStandard(); got != tt.isStandard {
				t.Errorf("IsStandard() = %v, want %v", got, tt.isStandard)
			}
			if got := s.IsClass(); got != tt.isClass {
				t.Errorf("IsClass() = %v, want %v", got, tt.isClass)
			}
			if got := s.IsInterfaceRecipient(); got != tt.isInterface {
				t.Errorf("IsInterfaceRecipient() = %v, want %v", got, tt.isInterface)
			}
		})
	}
}

func TestSetupPacketFields(t *testing.T) {
	s := &SetupPacket{Value: 0x0102, Index: 0x0304}

	if got := s.InterfaceNumber(); got != 0x04 {
		t.Errorf("InterfaceNumber() = 0x%02X, want 0x04", got)
	}
	if got := s.EntityID(); got != 0x03 {
		t.Errorf("EntityID() = 0x%02X, want 0x03", got)
	}
	if got := s.ControlSelector(); got != 0x01 {
		t.Errorf("ControlSelector() = 0x%02X, want 0x01", got)
	}
}

func TestGetInterfaceSetup(t *testing.T) {
	var s SetupPacket
	GetInterfaceSetup(&s, 2)

	if !s.IsDeviceToHost() || !s.IsStandard() || !s.IsInterfaceRecipient() {
		t.Errorf("GetInterfaceSetup() type bits wrong: %s", s.String())
	}
	if s.Request != RequestGetInterface || s.InterfaceNumber() != 2 || s.Length != 1 {
		t.Errorf("GetInterfaceSetup() fields wrong: %s", s.String())
	}
}

func TestSetInterfaceSetup(t *testing.T) {
	var s SetupPacket
	SetInterfaceSetup(&s, 1, 1)

	if !s.IsHostToDevice() || !s.IsStandard() || !s.IsInterfaceRecipient() {
		t.Errorf("SetInterfaceSetup() type bits wrong: %s", s.String())
	}
	if s.Request != RequestSetInterface || s.InterfaceNumber() != 1 || s.Value != 1 {
		t.Errorf("SetInterfaceSetup() fields wrong: %s", s.String())
	}
}

func TestClassInterfaceInSetup(t *testing.T) {
	var s SetupPacket
	ClassInterfaceInSetup(&s, 0x02, 0x01, 0x01, 0x00, 14)

	if !s.IsDeviceToHost() || !s.IsClass() || !s.IsInterfaceRecipient() {
		t.Errorf("ClassInterfaceInSetup() type bits wrong: %s", s.String())
	}
	if s.EntityID() != 0x01 {
		t.Errorf("EntityID() = 0x%02X, want 0x01", s.EntityID())
	}
	if s.ControlSelector() != 0x01 {
		t.Errorf("ControlSelector() = 0x%02X, want 0x01", s.ControlSelector())
	}
	if s.InterfaceNumber() != 0 || s.Length != 14 {
		t.Errorf("ClassInterfaceInSetup() fields wrong: %s", s.String())
	}
}
