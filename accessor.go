package bufview

import "encoding/binary"

// ByteOrder is one of the two fixed interpretation families for the typed
// accessors. The two package values BE and LE are independent; a value
// written through one and read through the other comes back byte-swapped.
type ByteOrder struct {
	order binary.ByteOrder
}

var (
	// BE addresses multi-byte values big-endian.
	BE = ByteOrder{binary.BigEndian}
	// LE addresses multi-byte values little-endian.
	LE = ByteOrder{binary.LittleEndian}
)

// checkAccess validates an offset/width pair against the view length.
func checkAccess(op string, v View, off, width int) error {
	if off < 0 || off > v.length-width {
		return &BoundsError{Op: op, View: v, Off: off, Len: width}
	}
	return nil
}

// Uint8 reads the byte at off. Byte order is irrelevant at width 1.
func (v View) Uint8(off int) (uint8, error) {
	if err := checkAccess("uint8", v, off, 1); err != nil {
		return 0, err
	}
	return v.store.b[v.off+off], nil
}

// SetUint8 writes the byte at off in place.
func (v View) SetUint8(off int, x uint8) error {
	if err := checkAccess("set_uint8", v, off, 1); err != nil {
		return err
	}
	v.store.b[v.off+off] = x
	return nil
}

// Uint16 reads a 16-bit unsigned value at the byte offset off within v.
func (o ByteOrder) Uint16(v View, off int) (uint16, error) {
	if err := checkAccess("uint16", v, off, 2); err != nil {
		return 0, err
	}
	return o.order.Uint16(v.store.b[v.off+off:]), nil
}

// PutUint16 writes a 16-bit unsigned value at the byte offset off within v.
func (o ByteOrder) PutUint16(v View, off int, x uint16) error {
	if err := checkAccess("put_uint16", v, off, 2); err != nil {
		return err
	}
	o.order.PutUint16(v.store.b[v.off+off:], x)
	return nil
}

// Uint32 reads a 32-bit unsigned value at the byte offset off within v.
func (o ByteOrder) Uint32(v View, off int) (uint32, error) {
	if err := checkAccess("uint32", v, off, 4); err != nil {
		return 0, err
	}
	return o.order.Uint32(v.store.b[v.off+off:]), nil
}

// PutUint32 writes a 32-bit unsigned value at the byte offset off within v.
func (o ByteOrder) PutUint32(v View, off int, x uint32) error {
	if err := checkAccess("put_uint32", v, off, 4); err != nil {
		return err
	}
	o.order.PutUint32(v.store.b[v.off+off:], x)
	return nil
}

// Uint64 reads a 64-bit unsigned value at the byte offset off within v.
func (o ByteOrder) Uint64(v View, off int) (uint64, error) {
	if err := checkAccess("uint64", v, off, 8); err != nil {
		return 0, err
	}
	return o.order.Uint64(v.store.b[v.off+off:]), nil
}

// PutUint64 writes a 64-bit unsigned value at the byte offset off within v.
func (o ByteOrder) PutUint64(v View, off int, x uint64) error {
	if err := checkAccess("put_uint64", v, off, 8); err != nil {
		return err
	}
	o.order.PutUint64(v.store.b[v.off+off:], x)
	return nil
}
