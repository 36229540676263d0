package bufview

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the sentinel wrapped by every BoundsError; test with
// errors.Is when the diagnostic fields do not matter.
var ErrOutOfBounds = errors.New("out of bounds")

// BoundsError reports an operation whose window arithmetic would have
// placed a view outside its backing store. The check always precedes any
// write, so a failing call never partially mutates memory. These are
// contract violations, not transient faults; no retry applies.
type BoundsError struct {
	Op   string // operation that failed
	View View   // offending view descriptor
	Off  int    // offending offset
	Len  int    // offending length
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bufview: %s %s off=%d len=%d: %v", e.Op, e.View, e.Off, e.Len, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// IterError reports a record whose declared length did not fit the
// remaining window during iteration. Record is 1-based.
type IterError struct {
	Record int
	Err    error
}

func (e *IterError) Error() string {
	return fmt.Sprintf("bufview: record %d: %v", e.Record, e.Err)
}

func (e *IterError) Unwrap() error { return e.Err }
