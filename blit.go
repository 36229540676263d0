package bufview

import "bytes"

// Copy returns a fresh owned copy of length bytes starting at off. The
// result never aliases the backing store.
func (v View) Copy(off, length int) ([]byte, error) {
	if length < 0 || off < 0 || v.length-off < length {
		return nil, &BoundsError{Op: "copy", View: v, Off: off, Len: length}
	}
	out := make([]byte, length)
	if length > 0 {
		copy(out, v.store.b[v.off+off:])
	}
	return out, nil
}

// ByteSlice returns a copy of the whole window. Mutating the result never
// touches the backing store.
func (v View) ByteSlice() []byte {
	out := make([]byte, v.length)
	copy(out, v.window())
	return out
}

// Blit copies length bytes from src at srcOff into dst at dstOff. The two
// windows may belong to the same store; overlapping copies behave like the
// built-in copy. The source bound is checked first, and source and
// destination violations are reported distinctly.
func Blit(src View, srcOff int, dst View, dstOff, length int) error {
	if length < 0 || srcOff < 0 || src.length-srcOff < length {
		return &BoundsError{Op: "blit src", View: src, Off: srcOff, Len: length}
	}
	if dstOff < 0 || dst.length-dstOff < length {
		return &BoundsError{Op: "blit dst", View: dst, Off: dstOff, Len: length}
	}
	if length > 0 {
		copy(dst.store.b[dst.off+dstOff:dst.off+dstOff+length], src.store.b[src.off+srcOff:])
	}
	return nil
}

// BlitFromBytes copies length bytes from a plain byte slice into dst at
// dstOff, with the same check shape as Blit.
func BlitFromBytes(src []byte, srcOff int, dst View, dstOff, length int) error {
	if length < 0 || srcOff < 0 || len(src)-srcOff < length {
		return &BoundsError{Op: "blit src", View: View{}, Off: srcOff, Len: length}
	}
	if dstOff < 0 || dst.length-dstOff < length {
		return &BoundsError{Op: "blit dst", View: dst, Off: dstOff, Len: length}
	}
	if length > 0 {
		copy(dst.store.b[dst.off+dstOff:dst.off+dstOff+length], src[srcOff:])
	}
	return nil
}

// BlitToBytes copies length bytes from src at srcOff into a plain byte
// slice at dstOff.
func BlitToBytes(src View, srcOff int, dst []byte, dstOff, length int) error {
	if length < 0 || srcOff < 0 || src.length-srcOff < length {
		return &BoundsError{Op: "blit src", View: src, Off: srcOff, Len: length}
	}
	if dstOff < 0 || len(dst)-dstOff < length {
		return &BoundsError{Op: "blit dst", View: View{}, Off: dstOff, Len: length}
	}
	if length > 0 {
		copy(dst[dstOff:dstOff+length], src.store.b[src.off+srcOff:])
	}
	return nil
}

// Compare orders two views length-first: when the lengths differ the
// shorter view is strictly less regardless of content; equal-length views
// fall back to bytewise comparison of their windows.
func Compare(a, b View) int {
	switch {
	case a.length < b.length:
		return -1
	case a.length > b.length:
		return 1
	default:
		return bytes.Compare(a.window(), b.window())
	}
}

// Equal reports whether a and b have identical length and content.
func Equal(a, b View) bool {
	return Compare(a, b) == 0
}

// Fill overwrites every byte of the window with x, in place.
func (v View) Fill(x byte) {
	w := v.window()
	for i := range w {
		w[i] = x
	}
}
