// Package zc (zero-copy) contains opt-in unsafe aliasing helpers: they
// reinterpret a byte window as a slice of wider primitives without
// copying. The safe bufview API never does this; callers who opt in take
// on the lifetime and mutation hazards themselves. Keep anything relying
// on unsafe confined to this package.
package zc

import (
	"errors"
	"unsafe"
)

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// UnsafePrimitives allows aliasing []byte as a primitive slice
	// (e.g. []uint32) without copying.
	UnsafePrimitives bool

	// CheckAlignment enables runtime alignment checks before aliasing.
	CheckAlignment bool
}

var (
	ErrDisabled     = errors.New("zc: unsafe primitives not enabled")
	ErrMisaligned   = errors.New("zc: window not aligned for element width")
	ErrPartialWidth = errors.New("zc: window length not a multiple of element width")
)

func check(b []byte, width int, o Options) error {
	if !o.UnsafePrimitives {
		return ErrDisabled
	}
	if len(b)%width != 0 {
		return ErrPartialWidth
	}
	if o.CheckAlignment && len(b) > 0 {
		if uintptr(unsafe.Pointer(&b[0]))%uintptr(width) != 0 {
			return ErrMisaligned
		}
	}
	return nil
}

// AliasUint16 reinterprets b as []uint16 in host byte order, sharing
// memory with b.
func AliasUint16(b []byte, o Options) ([]uint16, error) {
	if err := check(b, 2, o); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2), nil
}

// AliasUint32 reinterprets b as []uint32 in host byte order, sharing
// memory with b.
func AliasUint32(b []byte, o Options) ([]uint32, error) {
	if err := check(b, 4, o); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4), nil
}

// AliasUint64 reinterprets b as []uint64 in host byte order, sharing
// memory with b.
func AliasUint64(b []byte, o Options) ([]uint64, error) {
	if err := check(b, 8, o); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8), nil
}
