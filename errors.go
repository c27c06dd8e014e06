package bufref

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("bufref: out of range")

// RangeError is the value views panic with when an index, cursor move or slice
// bound falls outside the view. It unwraps to ErrOutOfRange.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bufref: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, i, n int) *RangeError {
	return &RangeError{Op: op, Index: i, Len: n}
}
