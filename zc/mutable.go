package zc

import "github.com/rawbytedev/bufref/internal/common"

// MutableView is the writable View. m.View widens it; nothing narrows back.
type MutableView[T Scalar] struct {
	View[T]
}

func MutableOf[T Scalar](values ...T) MutableView[T] {
	return MutableView[T]{Of(values...)}
}

func MutableFromSlice[T Scalar](s []T) MutableView[T] {
	return MutableView[T]{FromSlice(s)}
}

func MutableFromRange[T Scalar](s []T, begin, end int) MutableView[T] {
	return MutableView[T]{FromRange(s, begin, end)}
}

func (m MutableView[T]) ReadOnly() View[T] { return m.View }

func (m MutableView[T]) Set(i int, x T) {
	*common.ElemAt[T](m.base, m.start+i) = x
}

func (m MutableView[T]) Ptr(i int) *T {
	return common.ElemAt[T](m.base, m.start+i)
}

func (m MutableView[T]) Elems() []T { return m.elems() }

func (m MutableView[T]) ZeroFill() MutableView[T] {
	clear(m.elems())
	return m
}

func (m MutableView[T]) CopyFrom(src View[T]) MutableView[T] {
	copy(m.elems(), src.elems())
	return m
}

func (m MutableView[T]) Slice(from, to int) MutableView[T] {
	return MutableView[T]{m.View.Slice(from, to)}
}

func (m MutableView[T]) Add(n int) MutableView[T] {
	return MutableView[T]{m.View.Add(n)}
}

func (m MutableView[T]) Sub(n int) MutableView[T] {
	return MutableView[T]{m.View.Sub(n)}
}

func (m *MutableView[T]) Inc() *MutableView[T] {
	m.start++
	return m
}

func (m *MutableView[T]) PostInc() MutableView[T] {
	old := *m
	m.start++
	return old
}

func (m *MutableView[T]) Dec() *MutableView[T] {
	m.start--
	return m
}

func (m *MutableView[T]) PostDec() MutableView[T] {
	old := *m
	m.start--
	return old
}

// AsMutableBytes is AsBytes for writable views.
func AsMutableBytes[T Scalar](m MutableView[T]) MutableView[byte] {
	return MutableView[byte]{AsBytes(m.View)}
}
