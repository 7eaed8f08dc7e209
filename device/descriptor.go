package device

import (
	"github.com/ardnew/softuac/pkg"
)

// USB Descriptor Types (USB 2.0 Spec Table 9-5).
const (
	DescriptorTypeDevice               = 0x01
	DescriptorTypeConfiguration        = 0x02
	DescriptorTypeString               = 0x03
	DescriptorTypeInterface            = 0x04
	DescriptorTypeEndpoint             = 0x05
	DescriptorTypeInterfaceAssociation = 0x0B
	DescriptorTypeCSInterface          = 0x24 // Class-specific interface
	DescriptorTypeCSEndpoint           = 0x25 // Class-specific endpoint
)

// USB Class Codes.
const (
	ClassPerInterface = 0x00 // Class defined at interface level
	ClassAudio        = 0x01 // Audio class
	ClassCDC          = 0x02 // Communications Device Class
	ClassHID          = 0x03 // Human Interface Device
	ClassMassStorage  = 0x08 // Mass Storage
	ClassMisc         = 0xEF // Miscellaneous
	ClassVendor       = 0xFF // Vendor Specific
)

// DescriptorWriter emits a function's configuration descriptors into a
// buffer owned by the device-stack framework. Descriptors are appended
// sequentially; the writer fills in bLength and bDescriptorType for each.
type DescriptorWriter struct {
	buf []byte
	pos int
}

// NewDescriptorWriter creates a writer appending into buf.
func NewDescriptorWriter(buf []byte) *DescriptorWriter {
	return &DescriptorWriter{buf: buf}
}

// Write appends one descriptor of the given type with the given fields.
// The two-byte length/type header is prepended automatically. Returns
// pkg.ErrBufferTooSmall if the buffer cannot hold the descriptor; the
// write position is left unchanged in that case.
func (w *DescriptorWriter) Write(descType uint8, fields []byte) error {
	length := 2 + len(fields)
	if length > 255 {
		return pkg.ErrInvalidParameter
	}
	if w.pos+length > len(w.buf) {
		pkg.LogError(pkg.ComponentDescriptor, "descriptor buffer exhausted",
			"type", descType,
			"need", length,
			"free", len(w.buf)-w.pos)
		return pkg.ErrBufferTooSmall
	}
	w.buf[w.pos] = uint8(length)
	w.buf[w.pos+1] = descType
	copy(w.buf[w.pos+2:], fields)
	w.pos += length
	return nil
}

// WriteInterface appends a standard interface descriptor for alternate
// setting 0 with no endpoints.
func (w *DescriptorWriter) WriteInterface(number, class, subclass, protocol uint8) error {
	return w.Write(DescriptorTypeInterface, []byte{
		number,
		0x00, // alternate setting
		0x00, // no endpoints
		class,
		subclass,
		protocol,
		0x00, // string index (none)
	})
}

// Len returns the number of bytes written so far.
func (w *DescriptorWriter) Len() int {
	return w.pos
}

// Bytes returns the descriptors written so far.
// The returned slice references the writer's buffer; do not modify.
func (w *DescriptorWriter) Bytes() []byte {
	return w.buf[:w.pos]
}
