package bufref

import (
	"bytes"
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and the same elements.
// Byte views are compared with bytes.Equal.
func Equal[T comparable](a, b View[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if ab, ok := any(a).(View[byte]); ok {
		return bytes.Equal(ab.elems(), any(b).(View[byte]).elems())
	}
	return slices.Equal(a.elems(), b.elems())
}

// Compare orders a and b lexicographically element by element. When one is a
// prefix of the other the shorter view sorts first.
func Compare[T cmp.Ordered](a, b View[T]) int {
	if ab, ok := any(a).(View[byte]); ok {
		return bytes.Compare(ab.elems(), any(b).(View[byte]).elems())
	}
	return slices.Compare(a.elems(), b.elems())
}

func EqualFunc[T, U any](a View[T], b View[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.elems(), b.elems(), eq)
}

func CompareFunc[T, U any](a View[T], b View[U], fn func(T, U) int) int {
	return slices.CompareFunc(a.elems(), b.elems(), fn)
}

func EqualBytes(v View[byte], b []byte) bool {
	return bytes.Equal(v.elems(), b)
}

func CompareBytes(v View[byte], b []byte) int {
	return bytes.Compare(v.elems(), b)
}

// Index returns the position of the first x in v, or -1.
func Index[T comparable](v View[T], x T) int {
	return slices.Index(v.elems(), x)
}

func HasPrefix[T comparable](v, prefix View[T]) bool {
	if prefix.Len() > v.Len() {
		return false
	}
	return Equal(v.Slice(0, prefix.Len()), prefix)
}
