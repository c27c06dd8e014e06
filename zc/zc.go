// Package zc (zero-copy) holds the raw, unchecked counterparts of the bufref
// views. They keep a bare pointer into the backing allocation plus two element
// offsets and perform no bounds checks at all: indexing, cursor moves, slicing
// and CopyToN past the denoted range are undefined behaviour, exactly like the
// pointer pair they model. Use them on hot paths whose bounds are already
// proven; use package bufref everywhere else.
//
// Comparison and copying are byte-wise over Len()*sizeof(T) bytes, which is
// why the element types are restricted to Scalar.
package zc

import "errors"

var (
	ErrMisaligned     = errors.New("zc: start address is not aligned for the element type")
	ErrPartialElement = errors.New("zc: byte length is not a multiple of the element size")
)

// Options controls how byte views are reinterpreted by Cast and String.
type Options struct {
	// UnsafeStrings lets String alias the view's bytes instead of copying.
	// The string is only valid while the backing storage is alive and unchanged.
	UnsafeStrings bool

	// UnsafePrimitives lets Cast alias the bytes as []U without copying.
	// Without it Cast copies into a freshly allocated, correctly aligned array.
	UnsafePrimitives bool

	// CheckAlignment makes an aliasing Cast fail with ErrMisaligned instead of
	// producing a misaligned view.
	CheckAlignment bool
}

// Scalar lists the element types whose byte representation fully determines
// equality.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr // TODO: ~float32 | ~float64 once NaN and -0 handling is decided
}

// ToEnd passed as the upper bound of Slice means "up to the stop of the view".
const ToEnd = -1
