package function

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/tabulated/errs"
)

// ArrayFunction stores points in a contiguous buffer ordered by x.
//
// The buffer grows by doubling when an insert finds it full and never shrinks.
// Slots past Count are unused.
type ArrayFunction struct {
	points []Point // len(points) is the capacity; points[:count] are live
	count  int
}

var _ TabulatedFunction = (*ArrayFunction)(nil)

// NewArrayFunction creates count equally spaced points over [leftX, rightX]
// with y = 0.
//
// Returns errs.ErrInvalidRange if leftX >= rightX and errs.ErrInvalidCount if
// count < 2.
func NewArrayFunction(leftX, rightX float64, count int, opts ...Option) (*ArrayFunction, error) {
	xs, err := grid(leftX, rightX, count)
	if err != nil {
		return nil, err
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	capacity := count + defaultHeadroom
	if cfg.Capacity != 0 {
		if cfg.Capacity < count {
			return nil, fmt.Errorf("%w: capacity %d below point count %d", errs.ErrInvalidOption, cfg.Capacity, count)
		}
		capacity = cfg.Capacity
	}

	f := &ArrayFunction{
		points: make([]Point, capacity),
		count:  count,
	}
	for i, x := range xs {
		f.points[i] = Point{X: x}
	}

	return f, nil
}

// NewArrayFunctionWithValues creates len(values) equally spaced points over
// [leftX, rightX] whose y values are taken from values in order.
func NewArrayFunctionWithValues(leftX, rightX float64, values []float64, opts ...Option) (*ArrayFunction, error) {
	f, err := NewArrayFunction(leftX, rightX, len(values), opts...)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		f.points[i].Y = v
	}

	return f, nil
}

func (f *ArrayFunction) LeftBorder() float64 {
	return f.points[0].X
}

func (f *ArrayFunction) RightBorder() float64 {
	return f.points[f.count-1].X
}

func (f *ArrayFunction) Count() int {
	return f.count
}

// Cap returns the current buffer capacity.
func (f *ArrayFunction) Cap() int {
	return len(f.points)
}

func (f *ArrayFunction) PointAt(index int) (Point, error) {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return Point{}, err
	}

	return f.points[index], nil
}

func (f *ArrayFunction) SetPoint(index int, p Point) error {
	if err := f.checkOrder(index, p.X); err != nil {
		return err
	}

	f.points[index] = p

	return nil
}

func (f *ArrayFunction) XAt(index int) (float64, error) {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return 0, err
	}

	return f.points[index].X, nil
}

func (f *ArrayFunction) YAt(index int) (float64, error) {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return 0, err
	}

	return f.points[index].Y, nil
}

func (f *ArrayFunction) SetX(index int, x float64) error {
	if err := f.checkOrder(index, x); err != nil {
		return err
	}

	f.points[index].X = x

	return nil
}

func (f *ArrayFunction) SetY(index int, y float64) error {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return err
	}

	f.points[index].Y = y

	return nil
}

// checkOrder validates index and that x fits strictly between its neighbors.
func (f *ArrayFunction) checkOrder(index int, x float64) error {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return err
	}

	hasPrev, hasNext := index > 0, index < f.count-1
	var prevX, nextX float64
	if hasPrev {
		prevX = f.points[index-1].X
	}
	if hasNext {
		nextX = f.points[index+1].X
	}
	if !orderFits(x, hasPrev, prevX, hasNext, nextX) {
		return orderError(index, x)
	}

	return nil
}

// Insert places p at its sorted position, doubling the buffer when full.
//
// Returns errs.ErrDuplicateX if a point within Epsilon of p.X exists and
// errs.ErrOrderViolation if p.X is NaN.
func (f *ArrayFunction) Insert(p Point) error {
	if err := checkInsertX(p.X); err != nil {
		return err
	}

	pos := 0
	for pos < f.count && f.points[pos].X < p.X {
		pos++
	}

	if pos < f.count && equalX(f.points[pos].X, p.X) {
		return duplicateError(p.X)
	}
	if pos > 0 && equalX(f.points[pos-1].X, p.X) {
		return duplicateError(p.X)
	}

	if f.count == len(f.points) {
		grown := make([]Point, 2*len(f.points))
		copy(grown, f.points[:f.count])
		f.points = grown
	}

	copy(f.points[pos+1:f.count+1], f.points[pos:f.count])
	f.points[pos] = p
	f.count++

	return nil
}

// Delete removes the point at index.
//
// Returns errs.ErrUnderflow if only MinPoints points remain.
func (f *ArrayFunction) Delete(index int) error {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return err
	}
	if f.count <= MinPoints {
		return underflowError(f.count)
	}

	copy(f.points[index:f.count-1], f.points[index+1:f.count])
	f.count--
	f.points[f.count] = Point{}

	return nil
}

func (f *ArrayFunction) Evaluate(x float64) float64 {
	if math.IsNaN(x) || x < f.LeftBorder() || x > f.RightBorder() {
		return math.NaN()
	}

	// x <= RightBorder, so the scan stops at count-2 at the latest.
	i := 0
	for i < f.count-2 && f.points[i+1].X < x {
		i++
	}

	left, right := f.points[i], f.points[i+1]

	return interpolate(left.X, left.Y, right.X, right.Y, x)
}

// All iterates over copies of the points in ascending x.
func (f *ArrayFunction) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < f.count; i++ {
			if !yield(i, f.points[i]) {
				return
			}
		}
	}
}

func (f *ArrayFunction) String() string {
	return formatPoints("ArrayFunction", f)
}
