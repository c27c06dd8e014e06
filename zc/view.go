package zc

import (
	"bytes"
	"unsafe"

	"github.com/rawbytedev/bufref/internal/common"
)

// View is an unchecked read-only window over elements [start, stop) of the
// allocation base points to.
type View[T Scalar] struct {
	base  unsafe.Pointer
	start int
	stop  int
}

func Of[T Scalar](values ...T) View[T] {
	return FromSlice(values)
}

func FromSlice[T Scalar](s []T) View[T] {
	return View[T]{base: common.Base(s), stop: len(s)}
}

// FromRange views s[begin:end] with s as the backing allocation. The bounds are
// not validated.
func FromRange[T Scalar](s []T, begin, end int) View[T] {
	return View[T]{base: common.Base(s), start: begin, stop: end}
}

func (v View[T]) Len() int      { return v.stop - v.start }
func (v View[T]) IsEmpty() bool { return v.Len() == 0 }
func (v View[T]) Begin() int    { return v.start }
func (v View[T]) End() int      { return v.stop }

func (v View[T]) At(i int) T {
	return *common.ElemAt[T](v.base, v.start+i)
}

func (v View[T]) elems() []T {
	return common.SliceAt[T](v.base, v.start, v.Len())
}

// Bytes aliases the denoted elements as raw bytes.
func (v View[T]) Bytes() []byte {
	n := v.Len() * int(common.SizeOf[T]())
	if n == 0 {
		return nil
	}
	return common.BytesAt(unsafe.Pointer(common.ElemAt[T](v.base, v.start)), n)
}

func (v *View[T]) Inc() *View[T] {
	v.start++
	return v
}

func (v *View[T]) PostInc() View[T] {
	old := *v
	v.start++
	return old
}

func (v *View[T]) Dec() *View[T] {
	v.start--
	return v
}

func (v *View[T]) PostDec() View[T] {
	old := *v
	v.start--
	return old
}

func (v View[T]) Add(n int) View[T] {
	v.start += n
	return v
}

func (v View[T]) Sub(n int) View[T] {
	v.start -= n
	return v
}

// Slice returns [start+from, start+to), or [start+from, stop) for ToEnd.
func (v View[T]) Slice(from, to int) View[T] {
	if to == ToEnd {
		to = v.Len()
	}
	return View[T]{base: v.base, start: v.start + from, stop: v.start + to}
}

// Equal compares length first, then the raw bytes.
func (v View[T]) Equal(o View[T]) bool {
	return v.Len() == o.Len() && bytes.Equal(v.Bytes(), o.Bytes())
}

// Compare returns the sign of a byte-wise comparison of the two ranges. For
// multi-byte elements this is memory order, not numeric order.
func (v View[T]) Compare(o View[T]) int {
	return bytes.Compare(v.Bytes(), o.Bytes())
}

// CopyTo copies min(v.Len(), dst.Len()) elements.
func (v View[T]) CopyTo(dst MutableView[T]) int {
	return copy(dst.elems(), v.elems())
}

// CopyToN copies n elements without looking at either length.
func (v View[T]) CopyToN(dst MutableView[T], n int) int {
	return copy(common.SliceAt[T](dst.base, dst.start, n), common.SliceAt[T](v.base, v.start, n))
}

func (v View[T]) AppendTo(dst []T) []T {
	return append(dst, v.elems()...)
}

// AsBytes reinterprets v as a byte view over the same memory. Cursor
// positions are scaled so the result can still retreat to the allocation start.
func AsBytes[T Scalar](v View[T]) View[byte] {
	size := int(common.SizeOf[T]())
	return View[byte]{base: v.base, start: v.start * size, stop: v.stop * size}
}
