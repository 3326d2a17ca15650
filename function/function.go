package function

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/arloliu/tabulated/errs"
	"github.com/arloliu/tabulated/internal/hash"
)

// Epsilon is the absolute tolerance used by Insert and Evaluate when comparing x values.
const Epsilon = 1e-10

// MinPoints is the smallest number of points a function may hold.
const MinPoints = 2

// TabulatedFunction is the capability set shared by every storage engine.
type TabulatedFunction interface {
	fmt.Stringer

	// LeftBorder returns the x of the first point.
	LeftBorder() float64
	// RightBorder returns the x of the last point.
	RightBorder() float64
	// Count returns the number of points.
	Count() int

	// PointAt returns a copy of the point at index.
	PointAt(index int) (Point, error)
	// SetPoint replaces the point at index. The new x must lie strictly
	// between the x of its neighbors.
	SetPoint(index int, p Point) error
	// XAt returns the x of the point at index.
	XAt(index int) (float64, error)
	// YAt returns the y of the point at index.
	YAt(index int) (float64, error)
	// SetX moves the point at index. Same ordering rule as SetPoint.
	SetX(index int, x float64) error
	// SetY replaces the y of the point at index. It has no ordering constraint.
	SetY(index int, y float64) error

	// Insert adds p at its sorted position.
	Insert(p Point) error
	// Delete removes the point at index.
	Delete(index int) error

	// Evaluate returns the function value at x, or NaN outside the domain.
	Evaluate(x float64) float64

	// All iterates over copies of the points in ascending x.
	All() iter.Seq2[int, Point]
}

func equalX(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// interpolate returns the value at x on the segment (x1, y1)-(x2, y2),
// snapping to an endpoint when x matches it within Epsilon.
func interpolate(x1, y1, x2, y2, x float64) float64 {
	if equalX(x1, x) {
		return y1
	}
	if equalX(x2, x) {
		return y2
	}

	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}

// orderFits reports whether x lies strictly between the neighbors of a point.
// hasPrev and hasNext are false at the ends of the function.
// The comparisons are written positively so a NaN x never fits.
func orderFits(x float64, hasPrev bool, prevX float64, hasNext bool, nextX float64) bool {
	if hasPrev && !(x > prevX) {
		return false
	}
	if hasNext && !(x < nextX) {
		return false
	}

	return true
}

// checkInsertX rejects an x that has no place in the ascending order.
func checkInsertX(x float64) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: x is NaN", errs.ErrOrderViolation)
	}

	return nil
}

func orderError(index int, x float64) error {
	return fmt.Errorf("%w: x=%g at index %d", errs.ErrOrderViolation, x, index)
}

func duplicateError(x float64) error {
	return fmt.Errorf("%w: x=%g", errs.ErrDuplicateX, x)
}

func underflowError(count int) error {
	return fmt.Errorf("%w: count %d", errs.ErrUnderflow, count)
}

// grid checks construction parameters and returns count equally spaced x
// values over [leftX, rightX]. The last sample is pinned to rightX so the
// domain border is exact.
//
// A range too narrow (or too wide) for count distinct float64 samples is
// rejected with errs.ErrInvalidRange.
func grid(leftX, rightX float64, count int) ([]float64, error) {
	if !(leftX < rightX) {
		return nil, fmt.Errorf("%w: left=%g, right=%g", errs.ErrInvalidRange, leftX, rightX)
	}
	if count < MinPoints {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidCount, count)
	}

	step := (rightX - leftX) / float64(count-1)
	xs := make([]float64, count)
	xs[0] = leftX
	for i := 1; i < count; i++ {
		x := leftX + float64(i)*step
		if i == count-1 {
			x = rightX
		}
		if !(x > xs[i-1]) {
			return nil, fmt.Errorf("%w: %d points do not fit in [%g, %g]", errs.ErrInvalidRange, count, leftX, rightX)
		}
		xs[i] = x
	}

	return xs, nil
}

func formatPoints(name string, f TabulatedFunction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [pointsCount=%d]\n", name, f.Count())
	for i, p := range f.All() {
		fmt.Fprintf(&sb, "  [%d] x=%.3f, y=%.3f\n", i, p.X, p.Y)
	}

	return sb.String()
}

// Points returns a copy of every point of f in ascending x.
func Points(f TabulatedFunction) []Point {
	pts := make([]Point, 0, f.Count())
	for _, p := range f.All() {
		pts = append(pts, p)
	}

	return pts
}

// Digest returns an xxHash64 of the ordered points of f.
//
// Two functions holding bit-identical samples have the same digest regardless
// of their storage engine.
func Digest(f TabulatedFunction) uint64 {
	d := hash.NewPointDigest()
	for _, p := range f.All() {
		d.Add(p.X, p.Y)
	}

	return d.Sum64()
}

// Equal reports whether a and b have the same number of points and every pair
// of points matches within Epsilon on both coordinates.
func Equal(a, b TabulatedFunction) bool {
	if a.Count() != b.Count() {
		return false
	}

	pb := Points(b)
	for i, p := range a.All() {
		if !equalX(p.X, pb[i].X) || !equalX(p.Y, pb[i].Y) {
			return false
		}
	}

	return true
}
