package bufview

// TotalLength sums the lengths of an ordered sequence of views, folded
// left-to-right so overflow behavior is deterministic.
func TotalLength(vs []View) int {
	n := 0
	for _, v := range vs {
		n += v.length
	}
	return n
}

// CopyAll concatenates the content of vs, in order, into one freshly
// allocated byte slice.
func CopyAll(vs []View) []byte {
	out := make([]byte, 0, TotalLength(vs))
	for _, v := range vs {
		out = append(out, v.window()...)
	}
	return out
}

// FillFrom copies bytes from an ordered sequence of source views into dst,
// consuming sources front-to-back until dst is full or the sources run
// out. It returns the number of bytes written and the unconsumed sources;
// when dst fills mid-source the head of the remainder is the unconsumed
// tail of that source.
func FillFrom(srcs []View, dst View) (int, []View) {
	written := 0
	for i, src := range srcs {
		room := dst.length - written
		if room == 0 {
			return written, srcs[i:]
		}
		n := src.length
		if n > room {
			n = room
		}
		// In-bounds by construction, both windows hold their invariant.
		_ = Blit(src, 0, dst, written, n)
		written += n
		if n < src.length {
			tail, _ := src.Shift(n)
			rest := append([]View{tail}, srcs[i+1:]...)
			return written, rest
		}
	}
	return written, nil
}

// Append concatenates a and b into a view over a fresh store sized
// a.Len()+b.Len(). The result aliases neither input.
func Append(a, b View) View {
	out := Create(a.length + b.length)
	_ = Blit(a, 0, out, 0, a.length)
	_ = Blit(b, 0, out, a.length, b.length)
	return out
}

// Concat concatenates an ordered sequence of views. An empty sequence
// yields a zero-length view over a fresh empty store. A single-element
// sequence is returned as-is, aliasing the original. Otherwise the content
// is blitted in order into a fresh store.
func Concat(vs []View) View {
	switch len(vs) {
	case 0:
		return Create(0)
	case 1:
		return vs[0]
	default:
		out := Create(TotalLength(vs))
		off := 0
		for _, v := range vs {
			_ = Blit(v, 0, out, off, v.length)
			off += v.length
		}
		return out
	}
}
