// Package tabulated models a function sampled at a finite, strictly increasing
// set of x-coordinates and evaluates it by linear interpolation.
//
// Two storage engines sit behind the function.TabulatedFunction interface:
// a growable array and a circular doubly-linked list. Callers pick one at
// construction and use the interface afterwards, so the representation can be
// swapped without code change.
//
// # Basic Usage
//
// Sampling x^2 on [-2, 2] and evaluating between samples:
//
//	import "github.com/arloliu/tabulated"
//
//	f, _ := tabulated.NewLinkedWithValues(-2, 2, []float64{4, 1, 0, 1, 4})
//	y := f.Evaluate(0.5)  // 0.5, interpolated between (0, 0) and (1, 1)
//	y = f.Evaluate(3)     // NaN, outside the domain
//
// Mutating points:
//
//	if err := f.Insert(function.NewPoint(0.5, 0.25)); err != nil {
//	    // errs.ErrDuplicateX if x = 0.5 already exists
//	}
//	if err := f.Delete(0); err != nil {
//	    // errs.ErrUnderflow when only 2 points are left
//	}
//
// Choosing the engine at runtime:
//
//	f, err := tabulated.New(format.StorageArray, 0, 10, 5)
//
// # Package Structure
//
// This package wraps the function package for the common cases. For options
// and engine-specific methods use the function package directly.
package tabulated

import (
	"fmt"

	"github.com/arloliu/tabulated/errs"
	"github.com/arloliu/tabulated/format"
	"github.com/arloliu/tabulated/function"
)

// NewArray creates an array-backed function with count equally spaced points
// over [leftX, rightX], all with y = 0.
//
// Returns errs.ErrInvalidRange if leftX >= rightX and errs.ErrInvalidCount if
// count < 2.
func NewArray(leftX, rightX float64, count int, opts ...function.Option) (function.TabulatedFunction, error) {
	f, err := function.NewArrayFunction(leftX, rightX, count, opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// NewArrayWithValues creates an array-backed function with one equally spaced
// point per value over [leftX, rightX].
func NewArrayWithValues(leftX, rightX float64, values []float64, opts ...function.Option) (function.TabulatedFunction, error) {
	f, err := function.NewArrayFunctionWithValues(leftX, rightX, values, opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// NewLinked creates a list-backed function with count equally spaced points
// over [leftX, rightX], all with y = 0.
func NewLinked(leftX, rightX float64, count int, opts ...function.Option) (function.TabulatedFunction, error) {
	f, err := function.NewLinkedFunction(leftX, rightX, count, opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// NewLinkedWithValues creates a list-backed function with one equally spaced
// point per value over [leftX, rightX].
func NewLinkedWithValues(leftX, rightX float64, values []float64, opts ...function.Option) (function.TabulatedFunction, error) {
	f, err := function.NewLinkedFunctionWithValues(leftX, rightX, values, opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// New creates a function with count equally spaced zero-valued points using
// the given storage engine.
//
// Returns errs.ErrUnknownStorage for an unsupported storage type.
func New(storage format.StorageType, leftX, rightX float64, count int, opts ...function.Option) (function.TabulatedFunction, error) {
	switch storage {
	case format.StorageArray:
		return NewArray(leftX, rightX, count, opts...)
	case format.StorageLinked:
		return NewLinked(leftX, rightX, count, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownStorage, storage)
	}
}

// NewWithValues creates a function with one equally spaced point per value
// using the given storage engine.
func NewWithValues(storage format.StorageType, leftX, rightX float64, values []float64, opts ...function.Option) (function.TabulatedFunction, error) {
	switch storage {
	case format.StorageArray:
		return NewArrayWithValues(leftX, rightX, values, opts...)
	case format.StorageLinked:
		return NewLinkedWithValues(leftX, rightX, values, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownStorage, storage)
	}
}
