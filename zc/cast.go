package zc

import (
	"unsafe"

	"github.com/rawbytedev/bufref/internal/common"
)

// Cast reinterprets a byte view as a view of U elements.
//
// With opts.UnsafePrimitives the result aliases v; otherwise the bytes are
// copied into a new []U, which is always aligned. An aliased result starts at
// its first element and cannot retreat further.
func Cast[U Scalar](v View[byte], opts Options) (View[U], error) {
	size := int(common.SizeOf[U]())
	if v.Len()%size != 0 {
		return View[U]{}, ErrPartialElement
	}
	n := v.Len() / size
	if n == 0 {
		return View[U]{}, nil
	}
	if !opts.UnsafePrimitives {
		out := make([]U, n)
		copy(common.BytesAt(common.Base(out), v.Len()), v.Bytes())
		return FromSlice(out), nil
	}
	p := unsafe.Pointer(common.ElemAt[byte](v.base, v.start))
	if opts.CheckAlignment && !common.IsAligned(p, common.AlignOf[U]()) {
		return View[U]{}, ErrMisaligned
	}
	return View[U]{base: p, stop: n}, nil
}

// String returns the bytes of v as a string, aliasing them when
// opts.UnsafeStrings is set.
func String(v View[byte], opts Options) string {
	b := v.Bytes()
	if len(b) == 0 {
		return ""
	}
	if opts.UnsafeStrings {
		return unsafe.String(&b[0], len(b))
	}
	return string(b)
}
