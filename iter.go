package bufview

// LengthFunc reports the length of the next record at the front of the
// remaining window. Returning ok=false signals that no further record
// follows and ends the iteration cleanly.
type LengthFunc func(rem View) (n int, ok bool)

// Iter walks variable-length records packed back-to-back in one view.
// It is a forward-only, single-pass cursor: each Next splits the next
// record off the remaining window. Usage follows the scanner idiom:
//
//	it := bufview.NewIter(v, next)
//	for it.Next() {
//		rec := it.View()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
//
// The cursor state is the remaining view itself; nothing is hidden in
// closures and the iterator is not restartable.
type Iter struct {
	rem  View
	next LengthFunc
	cur  View
	n    int
	err  error
	done bool
}

// NewIter returns an iterator over the records of v delimited by next.
func NewIter(v View, next LengthFunc) *Iter {
	return &Iter{rem: v, next: next}
}

// Next advances to the next record. It returns false when the remaining
// window is empty, when the length function signals end-of-records, or on
// a bounds failure (reported by Err).
func (it *Iter) Next() bool {
	if it.done {
		return false
	}
	if it.rem.Len() == 0 {
		it.done = true
		return false
	}
	n, ok := it.next(it.rem)
	if !ok {
		it.done = true
		return false
	}
	rec, rest, err := it.rem.Split(n)
	if err != nil {
		it.err = &IterError{Record: it.n + 1, Err: err}
		it.done = true
		return false
	}
	it.cur = rec
	it.rem = rest
	it.n++
	return true
}

// View returns the record produced by the last successful Next.
func (it *Iter) View() View { return it.cur }

// Err returns the bounds failure that stopped the iteration, if any.
func (it *Iter) Err() error { return it.err }

// Fold consumes the iterator left-to-right, combining each record into the
// accumulator. It returns the iterator's error if one stopped the walk.
func Fold[A any](it *Iter, init A, fn func(A, View) A) (A, error) {
	acc := init
	for it.Next() {
		acc = fn(acc, it.View())
	}
	return acc, it.Err()
}
