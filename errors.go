package linkedvec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a logical position does not address a live
// element.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports an out-of-range position together with the length the
// container had at the time.
//
// It matches ErrOutOfRange under errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("linkedvec: index %d out of range for length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
