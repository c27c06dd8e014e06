package bufref

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestWideningConversion(t *testing.T) {
	m := MutableOf(1, 2, 3)
	var v View[int] = m.View
	require.True(t, Equal(v, m.ReadOnly()))
	m.Set(0, 9)
	require.Equal(t, 9, v.At(0), "widened view shares storage")
}

func TestSetAndPtr(t *testing.T) {
	m := MutableFromSlice(make([]int, 3))
	m.Set(1, 5)
	*m.Ptr(2) = 7
	require.Equal(t, []int{0, 5, 7}, m.Elems())
	requireRangePanic(t, func() { m.Set(3, 1) })
	requireRangePanic(t, func() { m.Ptr(-1) })
}

func TestZeroFill(t *testing.T) {
	condition := func(b []byte) bool {
		m := MutableFromSlice(b).ZeroFill()
		for i := 0; i < m.Len(); i++ {
			if m.At(i) != 0 {
				return false
			}
		}
		return m.Len() == len(b)
	}
	require.NoError(t, quick.Check(condition, nil))

	type pair struct {
		a int
		b string
	}
	ps := MutableOf(pair{1, "x"}, pair{2, "y"}).ZeroFill()
	require.Equal(t, []pair{{}, {}}, ps.Elems())
}

func TestZeroFillOnlyTouchesTheView(t *testing.T) {
	s := []byte("abcdef")
	MutableFromRange(s, 2, 4).ZeroFill()
	require.Equal(t, []byte{'a', 'b', 0, 0, 'e', 'f'}, s)
}

func TestFill(t *testing.T) {
	m := MutableFromSlice(make([]byte, 4)).Fill(0xff)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, m.Elems())
}

func TestCopyFromLongerSourceCopiesDestLen(t *testing.T) {
	s := make([]byte, 6)
	dst := MutableFromRange(s, 1, 4)
	dst.CopyFrom(FromSlice([]byte("abcdefgh")))
	require.Equal(t, []byte("abc"), dst.Elems())
	require.Equal(t, []byte{0, 'a', 'b', 'c', 0, 0}, s, "no bytes past the view are written")
}

func TestCopyFromShorterSource(t *testing.T) {
	dst := MutableFromSlice([]int{9, 9, 9})
	got := dst.CopyFrom(Of(1, 2)).Elems()
	require.Equal(t, []int{1, 2, 9}, got)
}

func TestMutableSliceKeepsWriteAccess(t *testing.T) {
	s := []byte("0123456")
	m := MutableFromSlice(s)
	sub := m.Slice(2, 5)
	sub.Set(0, 'x')
	sub.Tail(1).ZeroFill()
	require.Equal(t, []byte{'0', '1', 'x', 0, 0, '5', '6'}, s)

	ts, err := m.TrySlice(5, ToEnd)
	require.NoError(t, err)
	ts.Fill('!')
	require.Equal(t, "!!", string(s[5:]))

	_, err = m.TrySlice(0, 8)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMutableCursors(t *testing.T) {
	s := make([]byte, 4)
	m := MutableFromSlice(s)
	for i := 0; !m.IsEmpty(); i++ {
		m.Set(0, byte('a'+i))
		m.Inc()
	}
	require.Equal(t, "abcd", string(s))

	m.Dec().Set(0, 'D')
	old := m.PostDec()
	old.Set(0, 'Z')
	require.Equal(t, "abcZ", string(s))
	require.Equal(t, 2, m.Len())

	n := m.Add(1)
	n.Set(0, 'Y')
	back := n.Sub(1)
	back.Set(0, 'X')
	require.Equal(t, "abXY", string(s))

	cur := MutableFromSlice(s)
	cur.PostInc().Set(0, '>')
	cur.Skip(2).Set(0, '<')
	require.Equal(t, ">bX<", string(s))
}

func TestMutableTakeAndSwap(t *testing.T) {
	a := MutableOf(1, 2)
	b := MutableOf(3)
	a.Swap(&b)
	require.Equal(t, []int{3}, a.Elems())
	require.Equal(t, []int{1, 2}, b.Elems())

	moved := b.Take()
	require.True(t, b.IsEmpty())
	moved.Set(0, 10)
	require.Equal(t, []int{10, 2}, moved.Elems())
}
