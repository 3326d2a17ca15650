// Package errs defines the errors returned by tabulated function engines.
//
// Every error kind has an exported sentinel so callers can branch with
// errors.Is. Index failures are reported as *IndexError, which matches
// ErrIndexOutOfBounds and carries the offending index.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when the left domain border is not less than the right one.
	ErrInvalidRange = errors.New("left border must be less than right border")
	// ErrInvalidCount is returned when fewer than two points are requested.
	ErrInvalidCount = errors.New("point count must be at least 2")
	// ErrIndexOutOfBounds is returned when an index is outside [0, count).
	ErrIndexOutOfBounds = errors.New("point index out of bounds")
	// ErrOrderViolation is returned when a new x would break strict ascending order.
	ErrOrderViolation = errors.New("point x breaks ascending order")
	// ErrDuplicateX is returned when inserting a point whose x already exists.
	ErrDuplicateX = errors.New("point with the same x already exists")
	// ErrUnderflow is returned when a delete would leave fewer than two points.
	ErrUnderflow = errors.New("cannot delete point: at least 2 points must remain")

	// ErrInvalidOption is returned when a construction option has an invalid value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownStorage is returned when a storage type has no engine.
	ErrUnknownStorage = errors.New("unknown storage type")
)

// IndexError reports an index outside the live point range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, count %d", ErrIndexOutOfBounds, e.Index, e.Count)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// CheckIndex returns an *IndexError when index is outside [0, count).
func CheckIndex(index, count int) error {
	if index < 0 || index >= count {
		return &IndexError{Index: index, Count: count}
	}

	return nil
}
