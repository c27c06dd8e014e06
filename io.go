package bufref

import "io"

// Reader drains a byte view. Every byte read is consumed from the view the
// Reader was created with.
type Reader struct {
	v *View[byte]
}

func NewReader(v *View[byte]) *Reader {
	return &Reader{v: v}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.v.IsEmpty() {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, r.v.elems())
	r.v.start += n
	return n, nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.v.IsEmpty() {
		return 0, io.EOF
	}
	return r.v.Pop(), nil
}

func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	b := r.v.elems()
	n, err := w.Write(b)
	r.v.start += n
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return r.v.Len() }

func (r *Reader) Remaining() View[byte] { return *r.v }

// Writer copies into a mutable byte view, advancing its start cursor.
type Writer struct {
	m *MutableView[byte]
}

func NewWriter(m *MutableView[byte]) *Writer {
	return &Writer{m: m}
}

// Write copies as much of p as fits and returns io.ErrShortWrite when the
// view fills up first.
func (w *Writer) Write(p []byte) (int, error) {
	n := copy(w.m.elems(), p)
	w.m.start += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (w *Writer) WriteByte(c byte) error {
	if w.m.IsEmpty() {
		return io.ErrShortWrite
	}
	w.m.buf[w.m.start] = c
	w.m.start++
	return nil
}

// Available returns how many bytes can still be written.
func (w *Writer) Available() int { return w.m.Len() }
