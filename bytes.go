package bufview

// Allocator maps a required length to a pre-sized view. Injecting one lets
// FromByteSliceAlloc place content into externally pooled buffers instead
// of fresh stores. The returned view must be at least n bytes long.
type Allocator func(n int) (View, error)

// FromByteSlice copies b into a view over a fresh store. The result does
// not alias b.
func FromByteSlice(b []byte) View {
	v := Create(len(b))
	_ = BlitFromBytes(b, 0, v, 0, len(b))
	return v
}

// FromByteSliceAlloc copies b into a view obtained from alloc, trimming
// the view's length to the content length. A nil alloc falls back to a
// fresh store. Errors from the allocator, or a returned view too short for
// the content, are passed through.
func FromByteSliceAlloc(b []byte, alloc Allocator) (View, error) {
	if alloc == nil {
		return FromByteSlice(b), nil
	}
	v, err := alloc(len(b))
	if err != nil {
		return View{}, err
	}
	if err := BlitFromBytes(b, 0, v, 0, len(b)); err != nil {
		return View{}, err
	}
	return v.WithLength(len(b))
}
