package common

import (
	"unsafe"
)

// SizeOf returns the byte width of one T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// AlignOf returns the required alignment of T.
func AlignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// IsAligned reports whether p is a multiple of align.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)%align == 0
}

// ElemAt returns a pointer to element i of a T array starting at base.
// Nothing is checked; i must stay inside the allocation base points into.
func ElemAt[T any](base unsafe.Pointer, i int) *T {
	return (*T)(unsafe.Add(base, uintptr(i)*SizeOf[T]()))
}

// SliceAt aliases n elements of T starting at element i of base without copying.
// n == 0 returns nil so that no pointer past the allocation is ever formed.
func SliceAt[T any](base unsafe.Pointer, i, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(ElemAt[T](base, i), n)
}

// BytesAt aliases n bytes starting at p.
func BytesAt(p unsafe.Pointer, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Base returns the address of the first element backing s, nil when s has no
// backing array.
func Base[T any](s []T) unsafe.Pointer {
	if cap(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}
