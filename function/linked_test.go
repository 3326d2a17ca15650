package function

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabulated/errs"
)

// requireRing checks prev/next symmetry around the sentinel and that the
// ring holds exactly Count nodes.
func requireRing(t *testing.T, f *LinkedFunction) {
	t.Helper()
	n := 0
	for cur := f.head.next; cur != f.head; cur = cur.next {
		require.Same(t, cur, cur.next.prev)
		require.Same(t, cur, cur.prev.next)
		n++
	}
	require.Equal(t, f.count, n)
	require.Same(t, f.head, f.head.next.prev)
	require.Same(t, f.head, f.head.prev.next)
}

func requireCacheConsistent(t *testing.T, f *LinkedFunction) {
	t.Helper()
	if f.cached == nil {
		return
	}
	cur := f.head.next
	for range f.cachedIndex {
		cur = cur.next
	}
	require.Same(t, cur, f.cached, "cached node does not sit at index %d", f.cachedIndex)
}

func TestLinkedFunction_ConstructRing(t *testing.T) {
	f, err := NewLinkedFunction(-5, 5, 6)
	require.NoError(t, err)

	requireRing(t, f)
	require.Zero(t, f.head.point)
	require.Same(t, f.head.prev, f.cached)
	require.Equal(t, 5, f.cachedIndex)
}

func TestLinkedFunction_CacheAdjacentSteps(t *testing.T) {
	f, err := NewLinkedFunction(0, 9, 10)
	require.NoError(t, err)

	x, err := f.XAt(4)
	require.NoError(t, err)
	require.Equal(t, 4.0, x)
	require.Equal(t, 4, f.cachedIndex)

	for i := 5; i < 10; i++ {
		x, err = f.XAt(i)
		require.NoError(t, err)
		require.Equal(t, float64(i), x)
		require.Equal(t, i, f.cachedIndex)
		requireCacheConsistent(t, f)
	}
	for i := 8; i >= 0; i-- {
		x, err = f.XAt(i)
		require.NoError(t, err)
		require.Equal(t, float64(i), x)
		require.Equal(t, i, f.cachedIndex)
		requireCacheConsistent(t, f)
	}
}

func TestLinkedFunction_CacheAfterInsert(t *testing.T) {
	f, err := NewLinkedFunction(0, 4, 5)
	require.NoError(t, err)

	require.NoError(t, f.Insert(Point{X: 1.5, Y: 7}))
	require.Equal(t, 2, f.cachedIndex)
	require.Equal(t, Point{X: 1.5, Y: 7}, f.cached.point)
	requireRing(t, f)

	require.NoError(t, f.Insert(Point{X: 9}))
	require.Equal(t, 6, f.cachedIndex)
	requireCacheConsistent(t, f)

	require.NoError(t, f.Insert(Point{X: -9}))
	require.Equal(t, 0, f.cachedIndex)
	requireCacheConsistent(t, f)
	requireRing(t, f)
}

func TestLinkedFunction_CacheAfterDelete(t *testing.T) {
	t.Run("deleted node clears cache", func(t *testing.T) {
		f, err := NewLinkedFunction(0, 5, 6)
		require.NoError(t, err)

		_, err = f.XAt(3)
		require.NoError(t, err)
		require.NoError(t, f.Delete(3))
		require.Nil(t, f.cached)
		require.Equal(t, -1, f.cachedIndex)
		requireRing(t, f)
		require.Equal(t, []float64{0, 1, 2, 4, 5}, xsLinked(f))
	})

	t.Run("cache past deleted index shifts down", func(t *testing.T) {
		f, err := NewLinkedFunction(0, 5, 6)
		require.NoError(t, err)

		_, err = f.XAt(4)
		require.NoError(t, err)
		require.NoError(t, f.Delete(1))
		require.Equal(t, 3, f.cachedIndex)
		require.Equal(t, 4.0, f.cached.point.X)
		requireCacheConsistent(t, f)

		x, err := f.XAt(4)
		require.NoError(t, err)
		require.Equal(t, 5.0, x)
	})

	t.Run("cache before deleted index stays", func(t *testing.T) {
		f, err := NewLinkedFunction(0, 5, 6)
		require.NoError(t, err)

		_, err = f.XAt(1)
		require.NoError(t, err)
		cached := f.cached
		require.NoError(t, f.Delete(3))
		require.Same(t, cached, f.cached)
		require.Equal(t, 1, f.cachedIndex)
		requireCacheConsistent(t, f)
	})

	t.Run("delete next to cache", func(t *testing.T) {
		f, err := NewLinkedFunction(0, 5, 6)
		require.NoError(t, err)

		_, err = f.XAt(2)
		require.NoError(t, err)
		require.NoError(t, f.Delete(3))
		require.Equal(t, 2, f.cachedIndex)
		require.NoError(t, f.Delete(1))
		require.Equal(t, 1, f.cachedIndex)
		requireCacheConsistent(t, f)
		require.Equal(t, []float64{0, 2, 4, 5}, xsLinked(f))
	})
}

func TestLinkedFunction_WithoutCache(t *testing.T) {
	f, err := NewLinkedFunction(0, 9, 10, WithoutCache())
	require.NoError(t, err)

	for i := range 10 {
		x, err := f.XAt(i)
		require.NoError(t, err)
		require.Equal(t, float64(i), x)
	}
	require.NoError(t, f.Insert(Point{X: 4.5}))
	require.NoError(t, f.Delete(0))
	require.Nil(t, f.cached)
	requireRing(t, f)
}

func TestLinkedFunction_FailedMutationsKeepRing(t *testing.T) {
	f, err := NewLinkedFunction(0, 2, 3)
	require.NoError(t, err)

	require.ErrorIs(t, f.Insert(Point{X: 1}), errs.ErrDuplicateX)
	require.ErrorIs(t, f.SetX(1, 2), errs.ErrOrderViolation)
	require.NoError(t, f.Delete(1))
	require.ErrorIs(t, f.Delete(0), errs.ErrUnderflow)
	requireRing(t, f)
	require.Equal(t, []float64{0, 2}, xsLinked(f))
}

func xsLinked(f *LinkedFunction) []float64 {
	out := make([]float64, 0, f.count)
	for _, p := range f.All() {
		out = append(out, p.X)
	}

	return out
}
