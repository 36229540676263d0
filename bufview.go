// Package bufview provides bounds-checked, zero-copy views over fixed
// capacity byte buffers.
//
// A Store is a fixed-size backing allocation. A View is a cheap value
// descriptor {offset, length} over a Store; every operation that derives a
// View from another returns a new descriptor sharing the same store and
// validates its window arithmetically before construction, so no reachable
// View can address memory outside its backing allocation.
//
// Views alias freely: overlapping Views over one Store are allowed, and a
// mutation through one alias (Fill, PutUint*, the destination side of Blit)
// is visible through every other. Nothing here is internally synchronized;
// callers must serialize concurrent writers that touch overlapping regions
// of one Store.
package bufview

// Store is a fixed-capacity byte region backing one or more Views.
// Its capacity never changes after creation.
type Store struct {
	b []byte
}

// NewStore allocates a fresh zeroed store of n bytes.
func NewStore(n int) *Store {
	return &Store{b: make([]byte, n)}
}

// WrapStore wraps caller-owned memory as a store. The caller keeps
// ownership of b; views created over the store alias it directly.
func WrapStore(b []byte) *Store {
	return &Store{b: b}
}

// Cap returns the fixed capacity of the store.
func (s *Store) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// View is a {offset, length} window over a Store. The zero value is an
// empty view over a nil store. Views are plain values; copy them freely.
type View struct {
	store  *Store
	off    int
	length int
}

// Len returns the length of the view window.
func (v View) Len() int { return v.length }

// Offset returns the window offset within the backing store.
func (v View) Offset() int { return v.off }

// Cap returns the capacity of the backing store.
func (v View) Cap() int { return v.store.Cap() }

// window returns the backing bytes of the view. Internal use only; every
// public path out of a view either copies or is an explicitly documented
// in-place mutation.
func (v View) window() []byte {
	if v.store == nil {
		return nil
	}
	return v.store.b[v.off : v.off+v.length]
}

// Create allocates a fresh n-byte store wrapped as a full view. Content is
// zeroed. Allocation failure is fatal via the Go runtime; there is no
// reclaim-and-retry policy.
func Create(n int) View {
	s := NewStore(n)
	return View{store: s, off: 0, length: n}
}

// FromBytes wraps an external buffer as a full view over it. The view
// aliases b; it does not copy.
func FromBytes(b []byte) View {
	s := WrapStore(b)
	return View{store: s, off: 0, length: len(b)}
}

// FromStore builds a view over an explicit window of s.
func FromStore(s *Store, off, length int) (View, error) {
	if off < 0 || length < 0 || off > s.Cap()-length {
		return View{}, &BoundsError{Op: "from_store", View: View{store: s}, Off: off, Len: length}
	}
	return View{store: s, off: off, length: length}, nil
}

// Sub derives a view starting off bytes into v with the given length.
//
// The bound is checked against the capacity of the backing store, not
// against v's declared length: a sub-view may extend past its parent's
// window as long as it stays inside the shared store. Sibling regions of
// one allocation can therefore be reached from any view over it.
func (v View) Sub(off, length int) (View, error) {
	// Subtraction form keeps the comparison overflow-safe for hostile
	// off/length values.
	if off < 0 || length < 0 || off > v.store.Cap()-v.off-length {
		return View{}, &BoundsError{Op: "sub", View: v, Off: off, Len: length}
	}
	return View{store: v.store, off: v.off + off, length: length}, nil
}

// Shift advances the window start by n bytes, shrinking the length by the
// same amount.
func (v View) Shift(n int) (View, error) {
	if n < 0 || n > v.length {
		return View{}, &BoundsError{Op: "shift", View: v, Off: n, Len: v.length - n}
	}
	return View{store: v.store, off: v.off + n, length: v.length - n}, nil
}

// WithLength returns v with its length replaced. The new window must still
// fit the backing store; it may exceed the previous length.
func (v View) WithLength(n int) (View, error) {
	if n < 0 || v.off > v.store.Cap()-n {
		return View{}, &BoundsError{Op: "with_length", View: v, Off: v.off, Len: n}
	}
	return View{store: v.store, off: v.off, length: n}, nil
}

// AddLength grows (or shrinks, for negative delta) the window length.
func (v View) AddLength(delta int) (View, error) {
	n := v.length + delta
	if n < 0 || v.off > v.store.Cap()-n {
		return View{}, &BoundsError{Op: "add_length", View: v, Off: v.off, Len: n}
	}
	return View{store: v.store, off: v.off, length: n}, nil
}

// Split cuts v into a header of the given length and the remaining body.
func (v View) Split(length int) (View, View, error) {
	return v.SplitAt(0, length)
}

// SplitAt cuts v at start into (header, body): header spans length bytes
// from start, body the rest of v's window.
func (v View) SplitAt(start, length int) (View, View, error) {
	header, err := v.Sub(start, length)
	if err != nil {
		return View{}, View{}, &BoundsError{Op: "split", View: v, Off: start, Len: length}
	}
	body, err := v.Sub(start+length, v.length-length-start)
	if err != nil {
		return View{}, View{}, &BoundsError{Op: "split", View: v, Off: start, Len: length}
	}
	return header, body, nil
}
