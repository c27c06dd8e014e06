// Package bytebuf provides the owning, growable byte container that views are
// copied into.
//
// Views handed out by a Buffer alias its storage and are invalidated by any
// later append, Grow, Truncate or Reset.
package bytebuf

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/bufref"
)

var ErrNegativeCount = errors.New("bytebuf: negative count")

type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// FromBytes returns a Buffer holding a copy of b.
func FromBytes(b []byte) *Buffer {
	return &Buffer{buf: append([]byte(nil), b...)}
}

// AppendView copies the elements denoted by v to the end of the buffer.
func (b *Buffer) AppendView(v bufref.View[byte]) {
	b.buf = v.AppendTo(b.buf)
}

func (b *Buffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *Buffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Grow makes room for at least n more bytes without another allocation.
func (b *Buffer) Grow(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if cap(b.buf)-len(b.buf) < n {
		w := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(w, b.buf)
		b.buf = w
	}
	return nil
}

// Truncate keeps only the first n bytes.
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > len(b.buf) {
		return fmt.Errorf("bytebuf: truncate to %d of %d: %w", n, len(b.buf), bufref.ErrOutOfRange)
	}
	b.buf = b.buf[:n]
	return nil
}

func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the contents without copying.
func (b *Buffer) Bytes() []byte { return b.buf }

func (b *Buffer) String() string { return string(b.buf) }

func (b *Buffer) View() bufref.View[byte] {
	return bufref.FromSlice(b.buf)
}

func (b *Buffer) MutableView() bufref.MutableView[byte] {
	return bufref.MutableFromSlice(b.buf)
}

func (b *Buffer) Equal(o *Buffer) bool {
	return bufref.Equal(b.View(), o.View())
}

func (b *Buffer) Compare(o *Buffer) int {
	return bufref.Compare(b.View(), o.View())
}
