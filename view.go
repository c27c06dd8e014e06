package bufref

import (
	"fmt"
	"iter"
	"slices"
)

// ToEnd passed as the upper bound of Slice means "up to the stop of the view".
const ToEnd = -1

// View is a read-only window [start, stop) over a backing slice.
//
// A View owns nothing: copying it copies two cursors, and the backing storage
// must outlive every view built on it. The zero value is an empty view.
//
// The cursor methods (Inc, Dec, Skip, Pop and their Post forms) move start in
// place and leave stop alone, so a view can be consumed as it is parsed and
// still denote the unconsumed remainder. Every other method leaves the
// receiver untouched.
type View[T any] struct {
	buf   []T
	start int
	stop  int
}

// Of returns a view over the given values. When called with s... the view
// aliases s.
func Of[T any](values ...T) View[T] {
	return View[T]{buf: values, stop: len(values)}
}

// FromSlice views all of s. Use arr[:] for a fixed-size array.
func FromSlice[T any](s []T) View[T] {
	return View[T]{buf: s, stop: len(s)}
}

// FromRange views s[begin:end]. The whole of s stays the backing allocation,
// so the view may later retreat (Dec, Sub) down to s[0].
func FromRange[T any](s []T, begin, end int) View[T] {
	if end < 0 || end > len(s) {
		panic(outOfRange("FromRange", end, len(s)))
	}
	if begin < 0 || begin > end {
		panic(outOfRange("FromRange", begin, end))
	}
	return View[T]{buf: s, start: begin, stop: end}
}

func (v View[T]) Len() int { return v.stop - v.start }

func (v View[T]) IsEmpty() bool { return v.Len() == 0 }

// Begin returns the start cursor as an index into the backing allocation.
func (v View[T]) Begin() int { return v.start }

// End returns the stop cursor as an index into the backing allocation.
func (v View[T]) End() int { return v.stop }

func (v View[T]) elems() []T {
	return v.buf[v.start:v.stop:v.stop]
}

func (v View[T]) index(op string, i int) int {
	if uint(i) >= uint(v.Len()) {
		panic(outOfRange(op, i, v.Len()))
	}
	return v.start + i
}

// At returns the i-th element of the view.
func (v View[T]) At(i int) T {
	return v.buf[v.index("At", i)]
}

// Get is the comma-ok form of At.
func (v View[T]) Get(i int) (T, bool) {
	if uint(i) >= uint(v.Len()) {
		var zero T
		return zero, false
	}
	return v.buf[v.start+i], true
}

// Front returns the element under the start cursor.
func (v View[T]) Front() T {
	return v.buf[v.index("Front", 0)]
}

// All iterates over the elements the view denotes when All is called.
func (v View[T]) All() iter.Seq2[int, T] {
	s := v.elems()
	return func(yield func(int, T) bool) {
		for i, x := range s {
			if !yield(i, x) {
				return
			}
		}
	}
}

func (v View[T]) Values() iter.Seq[T] {
	s := v.elems()
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

// Inc advances the start cursor by one element and returns the receiver.
func (v *View[T]) Inc() *View[T] {
	if v.start >= v.stop {
		panic(outOfRange("Inc", 1, v.Len()))
	}
	v.start++
	return v
}

// PostInc advances the start cursor by one and returns the view as it was
// before the move.
func (v *View[T]) PostInc() View[T] {
	old := *v
	v.Inc()
	return old
}

// Dec moves the start cursor back by one element. It may not move before the
// first element of the backing allocation.
func (v *View[T]) Dec() *View[T] {
	if v.start == 0 {
		panic(outOfRange("Dec", -1, v.Len()))
	}
	v.start--
	return v
}

func (v *View[T]) PostDec() View[T] {
	old := *v
	v.Dec()
	return old
}

// Skip consumes n elements.
func (v *View[T]) Skip(n int) *View[T] {
	if n < 0 {
		panic(outOfRange("Skip", n, v.Len()))
	}
	*v = v.shifted("Skip", n)
	return v
}

// Pop returns the element under the start cursor and consumes it.
func (v *View[T]) Pop() T {
	x := v.buf[v.index("Pop", 0)]
	v.start++
	return x
}

// Add returns a copy of the view with start moved forward by n.
func (v View[T]) Add(n int) View[T] { return v.shifted("Add", n) }

// Sub returns a copy of the view with start moved back by n.
func (v View[T]) Sub(n int) View[T] { return v.shifted("Sub", -n) }

func (v View[T]) shifted(op string, n int) View[T] {
	at := v.start + n
	if at < 0 || at > v.stop {
		panic(outOfRange(op, n, v.Len()))
	}
	v.start = at
	return v
}

// Slice returns the view over [from, to) relative to the current start.
// to == ToEnd selects up to the current stop.
func (v View[T]) Slice(from, to int) View[T] {
	s, err := v.TrySlice(from, to)
	if err != nil {
		panic(err)
	}
	return s
}

// Tail is Slice(from, ToEnd).
func (v View[T]) Tail(from int) View[T] { return v.Slice(from, ToEnd) }

// TrySlice is Slice returning a *RangeError instead of panicking.
func (v View[T]) TrySlice(from, to int) (View[T], error) {
	n := v.Len()
	if to == ToEnd {
		to = n
	}
	if to < 0 || to > n {
		return View[T]{}, outOfRange("Slice", to, n)
	}
	if from < 0 || from > to {
		return View[T]{}, outOfRange("Slice", from, to)
	}
	return View[T]{buf: v.buf, start: v.start + from, stop: v.start + to}, nil
}

// CopyTo copies min(v.Len(), dst.Len()) elements into dst and returns the
// count. Overlapping views are allowed.
func (v View[T]) CopyTo(dst MutableView[T]) int {
	return copy(dst.elems(), v.elems())
}

// CopyToN copies exactly n elements into dst.
func (v View[T]) CopyToN(dst MutableView[T], n int) int {
	if n < 0 || n > v.Len() {
		panic(outOfRange("CopyToN", n, v.Len()))
	}
	if n > dst.Len() {
		panic(outOfRange("CopyToN", n, dst.Len()))
	}
	return copy(dst.elems()[:n], v.elems()[:n])
}

// AppendTo appends the elements to dst, which is usually owned storage.
func (v View[T]) AppendTo(dst []T) []T {
	return append(dst, v.elems()...)
}

// Clone returns an owned copy of the elements.
func (v View[T]) Clone() []T {
	return slices.Clone(v.elems())
}

// Take returns the view and leaves the receiver empty.
func (v *View[T]) Take() View[T] {
	t := *v
	*v = View[T]{}
	return t
}

func (v *View[T]) Swap(other *View[T]) {
	*v, *other = *other, *v
}

func (v View[T]) String() string {
	return fmt.Sprintf("bufref.View[len=%d]", v.Len())
}
