package bufref

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRangePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, ErrOutOfRange)
		var re *RangeError
		require.True(t, errors.As(err, &re))
	}()
	fn()
}

func TestZeroViewIsEmpty(t *testing.T) {
	var v View[byte]
	require.True(t, v.IsEmpty())
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Begin())
	require.Equal(t, 0, v.End())
	require.Nil(t, v.Clone())
	for range v.All() {
		t.Fatal("empty view yielded an element")
	}
}

func TestConstruction(t *testing.T) {
	v := Of(1, 2, 3)
	require.Equal(t, 3, v.Len())
	require.Equal(t, []int{1, 2, 3}, v.Clone())

	arr := [4]uint16{9, 8, 7, 6}
	a := FromSlice(arr[:])
	require.Equal(t, len(arr), a.Len())
	require.Equal(t, uint16(6), a.At(3))

	r := FromRange([]byte("hello world"), 6, 11)
	require.Equal(t, "world", string(r.Clone()))
	require.Equal(t, 6, r.Begin())
	require.Equal(t, 11, r.End())

	requireRangePanic(t, func() { FromRange([]byte("abc"), 0, 4) })
	requireRangePanic(t, func() { FromRange([]byte("abc"), 2, 1) })
}

func TestViewAliasesBackingStorage(t *testing.T) {
	s := []byte("abc")
	v := FromSlice(s)
	s[1] = 'X'
	require.Equal(t, byte('X'), v.At(1))
}

func TestAtAndGet(t *testing.T) {
	v := Of("a", "b", "c")
	require.Equal(t, "b", v.At(1))
	x, ok := v.Get(2)
	require.True(t, ok)
	require.Equal(t, "c", x)
	_, ok = v.Get(3)
	require.False(t, ok)
	_, ok = v.Get(-1)
	require.False(t, ok)
	requireRangePanic(t, func() { v.At(3) })
	requireRangePanic(t, func() { v.At(-1) })
}

func TestIteration(t *testing.T) {
	v := Of(10, 20, 30)
	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int{10, 20, 30}, vals)

	var got []int
	for x := range v.Values() {
		if x == 30 {
			break
		}
		got = append(got, x)
	}
	require.Equal(t, []int{10, 20}, got)
}

func TestIncConsumesFromTheLeft(t *testing.T) {
	v := FromSlice([]byte("abcdef"))
	n := v.Len()
	stop := v.End()
	for i := 0; i < n; i++ {
		before := v.Len()
		require.Same(t, &v, v.Inc())
		require.Equal(t, before-1, v.Len())
		require.Equal(t, stop, v.End())
	}
	require.True(t, v.IsEmpty())
	requireRangePanic(t, func() { v.Inc() })
}

func TestPostIncReturnsPreviousState(t *testing.T) {
	v := Of('a', 'b', 'c')
	old := v.PostInc()
	require.Equal(t, 3, old.Len())
	require.Equal(t, 'a', old.Front())
	require.Equal(t, 2, v.Len())
	require.Equal(t, 'b', v.Front())
}

func TestDecRetreatsWithinBackingAllocation(t *testing.T) {
	s := []int{1, 2, 3, 4}
	v := FromRange(s, 2, 4)
	v.Dec()
	require.Equal(t, []int{2, 3, 4}, v.Clone())
	old := v.PostDec()
	require.Equal(t, 3, old.Len())
	require.Equal(t, []int{1, 2, 3, 4}, v.Clone())
	requireRangePanic(t, func() { v.Dec() })
}

func TestPopAndSkip(t *testing.T) {
	v := FromSlice([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	require.Equal(t, byte(0x01), v.Pop())
	v.Skip(2)
	require.Equal(t, []byte{0x04, 0x05}, v.Clone())
	requireRangePanic(t, func() { v.Skip(3) })
	requireRangePanic(t, func() { v.Skip(-1) })
	v.Skip(2)
	requireRangePanic(t, func() { v.Pop() })
	requireRangePanic(t, func() { v.Front() })
}

func TestAddSubDeriveNewViews(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	w := v.Add(2)
	require.Equal(t, 5, v.Len(), "Add must not move the receiver")
	require.Equal(t, []int{3, 4, 5}, w.Clone())
	require.Equal(t, v.End(), w.End())

	back := w.Sub(1)
	require.Equal(t, []int{2, 3, 4, 5}, back.Clone())

	require.True(t, v.Add(5).IsEmpty())
	requireRangePanic(t, func() { v.Add(6) })
	requireRangePanic(t, func() { v.Sub(1) })
}

func TestSlice(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	require.True(t, Equal(v.Slice(1, 4), Of(2, 3, 4)))
	require.Equal(t, []int{3, 4, 5}, v.Slice(2, ToEnd).Clone())
	require.Equal(t, []int{4, 5}, v.Tail(3).Clone())
	require.True(t, v.Slice(5, 5).IsEmpty())

	inner := v.Add(1).Slice(1, 3)
	require.Equal(t, []int{3, 4}, inner.Clone())

	_, err := v.TrySlice(2, 6)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = v.TrySlice(3, 2)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = v.TrySlice(-1, ToEnd)
	require.ErrorIs(t, err, ErrOutOfRange)
	requireRangePanic(t, func() { v.Slice(0, 6) })
}

func TestIdentityAndEmptySlices(t *testing.T) {
	condition := func(b []byte, at uint8) bool {
		v := FromSlice(b)
		if !Equal(v.Slice(0, v.Len()), v) {
			return false
		}
		i := 0
		if len(b) > 0 {
			i = int(at) % (len(b) + 1)
		}
		return v.Slice(i, i).Len() == 0
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestLengthMatchesCursors(t *testing.T) {
	condition := func(b []byte, lo, hi uint8) bool {
		a, z := int(lo), int(hi)
		if a > z {
			a, z = z, a
		}
		if z > len(b) {
			z = len(b)
		}
		if a > z {
			a = z
		}
		v := FromRange(b, a, z)
		return v.Len() == v.End()-v.Begin() && v.IsEmpty() == (v.Len() == 0)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestCopyToRoundTrip(t *testing.T) {
	condition := func(a []byte) bool {
		m := MutableFromSlice(make([]byte, len(a)))
		n := FromSlice(a).CopyTo(m)
		return n == len(a) && Equal(m.View, FromSlice(a))
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestCopyToTruncatesToShorter(t *testing.T) {
	src := Of[byte](1, 2, 3, 4)
	dst := MutableFromSlice(make([]byte, 2))
	require.Equal(t, 2, src.CopyTo(dst))
	require.Equal(t, []byte{1, 2}, dst.Elems())

	big := MutableFromSlice(make([]byte, 6))
	require.Equal(t, 4, src.CopyTo(big))
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0}, big.Elems())
}

func TestCopyToN(t *testing.T) {
	src := Of(1, 2, 3, 4)
	dst := MutableFromSlice(make([]int, 3))
	require.Equal(t, 2, src.CopyToN(dst, 2))
	require.Equal(t, []int{1, 2, 0}, dst.Elems())
	requireRangePanic(t, func() { src.CopyToN(dst, 4) })
	requireRangePanic(t, func() { src.CopyToN(dst, 5) })
	requireRangePanic(t, func() { src.CopyToN(dst, -1) })
}

func TestAppendToAndClone(t *testing.T) {
	v := FromSlice([]byte("tail"))
	out := v.AppendTo([]byte("head-"))
	require.Equal(t, "head-tail", string(out))

	c := v.Clone()
	c[0] = 'X'
	require.Equal(t, byte('t'), v.At(0), "Clone must not alias the view")
}

func TestTakeAndSwap(t *testing.T) {
	v := Of(1, 2, 3)
	moved := v.Take()
	require.True(t, v.IsEmpty())
	require.Equal(t, 3, moved.Len())

	a, b := Of(1), Of(2, 3)
	a.Swap(&b)
	require.Equal(t, []int{2, 3}, a.Clone())
	require.Equal(t, []int{1}, b.Clone())
}

func TestString(t *testing.T) {
	assert.Equal(t, "bufref.View[len=3]", Of(1, 2, 3).String())
	assert.Equal(t, "bufref.View[len=0]", View[byte]{}.String())
}

func FuzzSliceAndConsume(f *testing.F) {
	f.Add([]byte("hello world"), 2, 7, 3)
	f.Add([]byte{}, 0, 0, 0)
	f.Fuzz(func(t *testing.T, b []byte, from, to, steps int) {
		v := FromSlice(b)
		s, err := v.TrySlice(from, to)
		if err != nil {
			require.ErrorIs(t, err, ErrOutOfRange)
			return
		}
		if to == ToEnd {
			to = len(b)
		}
		want := b[from:to]
		require.Equal(t, len(want), s.Len())
		require.True(t, EqualBytes(s, want))
		if steps < 0 || steps > s.Len() {
			return
		}
		s.Skip(steps)
		require.True(t, EqualBytes(s, want[steps:]))
	})
}
