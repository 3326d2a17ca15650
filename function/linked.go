package function

import (
	"iter"
	"math"

	"github.com/arloliu/tabulated/errs"
)

type node struct {
	point Point
	prev  *node
	next  *node
}

// LinkedFunction stores points in a circular doubly-linked list ordered by x.
//
// The head sentinel never holds a point: head.next is the first point and
// head.prev the last, so splicing needs no nil checks at either end.
//
// The last node resolved by index is cached together with its index. A lookup
// of the same index or a direct neighbor follows one link from the cache.
type LinkedFunction struct {
	head  *node
	count int

	cacheEnabled bool
	cached       *node
	cachedIndex  int
}

var _ TabulatedFunction = (*LinkedFunction)(nil)

// NewLinkedFunction creates count equally spaced points over [leftX, rightX]
// with y = 0.
//
// Returns errs.ErrInvalidRange if leftX >= rightX and errs.ErrInvalidCount if
// count < 2.
func NewLinkedFunction(leftX, rightX float64, count int, opts ...Option) (*LinkedFunction, error) {
	xs, err := grid(leftX, rightX, count)
	if err != nil {
		return nil, err
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	head := &node{}
	head.next = head
	head.prev = head

	f := &LinkedFunction{
		head:         head,
		cacheEnabled: !cfg.DisableCache,
	}
	for _, x := range xs {
		f.pushBack(Point{X: x})
	}

	return f, nil
}

// NewLinkedFunctionWithValues creates len(values) equally spaced points over
// [leftX, rightX] whose y values are taken from values in order.
func NewLinkedFunctionWithValues(leftX, rightX float64, values []float64, opts ...Option) (*LinkedFunction, error) {
	f, err := NewLinkedFunction(leftX, rightX, len(values), opts...)
	if err != nil {
		return nil, err
	}

	n := f.head.next
	for _, v := range values {
		n.point.Y = v
		n = n.next
	}

	return f, nil
}

func (f *LinkedFunction) LeftBorder() float64 {
	return f.head.next.point.X
}

func (f *LinkedFunction) RightBorder() float64 {
	return f.head.prev.point.X
}

func (f *LinkedFunction) Count() int {
	return f.count
}

func (f *LinkedFunction) PointAt(index int) (Point, error) {
	n, err := f.nodeAt(index)
	if err != nil {
		return Point{}, err
	}

	return n.point, nil
}

func (f *LinkedFunction) SetPoint(index int, p Point) error {
	n, err := f.orderedNode(index, p.X)
	if err != nil {
		return err
	}

	n.point = p

	return nil
}

func (f *LinkedFunction) XAt(index int) (float64, error) {
	n, err := f.nodeAt(index)
	if err != nil {
		return 0, err
	}

	return n.point.X, nil
}

func (f *LinkedFunction) YAt(index int) (float64, error) {
	n, err := f.nodeAt(index)
	if err != nil {
		return 0, err
	}

	return n.point.Y, nil
}

func (f *LinkedFunction) SetX(index int, x float64) error {
	n, err := f.orderedNode(index, x)
	if err != nil {
		return err
	}

	n.point.X = x

	return nil
}

func (f *LinkedFunction) SetY(index int, y float64) error {
	n, err := f.nodeAt(index)
	if err != nil {
		return err
	}

	n.point.Y = y

	return nil
}

// Insert splices p in at its sorted position and caches the new node.
//
// Returns errs.ErrDuplicateX if a point within Epsilon of p.X exists and
// errs.ErrOrderViolation if p.X is NaN.
func (f *LinkedFunction) Insert(p Point) error {
	if err := checkInsertX(p.X); err != nil {
		return err
	}

	pos := 0
	next := f.head.next
	for next != f.head && next.point.X < p.X {
		next = next.next
		pos++
	}

	if next != f.head && equalX(next.point.X, p.X) {
		return duplicateError(p.X)
	}
	if prev := next.prev; prev != f.head && equalX(prev.point.X, p.X) {
		return duplicateError(p.X)
	}

	n := f.linkBefore(next, p)
	f.setCache(n, pos)

	return nil
}

// Delete unlinks the point at index. The cache is cleared if it held the
// removed node and renumbered if it sat past it.
//
// Returns errs.ErrUnderflow if only MinPoints points remain.
func (f *LinkedFunction) Delete(index int) error {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return err
	}
	if f.count <= MinPoints {
		return underflowError(f.count)
	}

	n, err := f.find(index)
	if err != nil {
		return err
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	f.count--

	switch {
	case f.cached == n:
		f.cached = nil
		f.cachedIndex = -1
	case f.cached != nil && f.cachedIndex > index:
		f.cachedIndex--
	}

	return nil
}

func (f *LinkedFunction) Evaluate(x float64) float64 {
	if math.IsNaN(x) || x < f.LeftBorder() || x > f.RightBorder() {
		return math.NaN()
	}

	// x <= RightBorder, so the walk stops before the last node.
	n := f.head.next
	for n.next.next != f.head && n.next.point.X < x {
		n = n.next
	}

	left, right := n.point, n.next.point

	return interpolate(left.X, left.Y, right.X, right.Y, x)
}

// All iterates over copies of the points in ascending x.
// It walks the list directly and leaves the index cache untouched.
func (f *LinkedFunction) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		i := 0
		for n := f.head.next; n != f.head; n = n.next {
			if !yield(i, n.point) {
				return
			}
			i++
		}
	}
}

func (f *LinkedFunction) String() string {
	return formatPoints("LinkedFunction", f)
}

// nodeAt resolves index to its node and moves the cache onto it.
func (f *LinkedFunction) nodeAt(index int) (*node, error) {
	n, err := f.find(index)
	if err != nil {
		return nil, err
	}
	f.setCache(n, index)

	return n, nil
}

// find resolves index without moving the cache. It follows one link from the
// cache when index is the cached index or adjacent to it, and walks from the
// nearer end otherwise.
func (f *LinkedFunction) find(index int) (*node, error) {
	if err := errs.CheckIndex(index, f.count); err != nil {
		return nil, err
	}

	if f.cached != nil {
		switch index {
		case f.cachedIndex:
			return f.cached, nil
		case f.cachedIndex + 1:
			return f.cached.next, nil
		case f.cachedIndex - 1:
			return f.cached.prev, nil
		}
	}

	if index < f.count/2 {
		n := f.head.next
		for i := 0; i < index; i++ {
			n = n.next
		}

		return n, nil
	}

	n := f.head.prev
	for i := f.count - 1; i > index; i-- {
		n = n.prev
	}

	return n, nil
}

// orderedNode resolves index and checks that x fits strictly between the
// x of the node's neighbors.
func (f *LinkedFunction) orderedNode(index int, x float64) (*node, error) {
	n, err := f.nodeAt(index)
	if err != nil {
		return nil, err
	}

	hasPrev, hasNext := n.prev != f.head, n.next != f.head
	if !orderFits(x, hasPrev, n.prev.point.X, hasNext, n.next.point.X) {
		return nil, orderError(index, x)
	}

	return n, nil
}

func (f *LinkedFunction) setCache(n *node, index int) {
	if !f.cacheEnabled {
		return
	}
	f.cached = n
	f.cachedIndex = index
}

// pushBack appends p after the current last node.
func (f *LinkedFunction) pushBack(p Point) {
	n := f.linkBefore(f.head, p)
	f.setCache(n, f.count-1)
}

// linkBefore splices a new node holding p in front of next.
func (f *LinkedFunction) linkBefore(next *node, p Point) *node {
	n := &node{point: p, prev: next.prev, next: next}
	next.prev.next = n
	next.prev = n
	f.count++

	return n
}
