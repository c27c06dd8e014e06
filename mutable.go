package bufref

// MutableView is a View that also permits writes through it.
//
// The embedded View is the widening conversion: m.View (or m.ReadOnly()) can
// be passed anywhere a View is expected. There is no way to turn
// a View back into a MutableView. Methods that derive a new view are
// re-declared here so the result keeps write access.
type MutableView[T any] struct {
	View[T]
}

func MutableOf[T any](values ...T) MutableView[T] {
	return MutableView[T]{Of(values...)}
}

func MutableFromSlice[T any](s []T) MutableView[T] {
	return MutableView[T]{FromSlice(s)}
}

func MutableFromRange[T any](s []T, begin, end int) MutableView[T] {
	return MutableView[T]{FromRange(s, begin, end)}
}

func (m MutableView[T]) ReadOnly() View[T] { return m.View }

// Set stores x at index i.
func (m MutableView[T]) Set(i int, x T) {
	m.buf[m.index("Set", i)] = x
}

// Ptr returns a writable reference to the i-th element.
func (m MutableView[T]) Ptr(i int) *T {
	return &m.buf[m.index("Ptr", i)]
}

// Elems returns the denoted elements as a slice sharing the backing storage.
func (m MutableView[T]) Elems() []T { return m.elems() }

// ZeroFill sets every element to the zero value of T.
func (m MutableView[T]) ZeroFill() MutableView[T] {
	clear(m.elems())
	return m
}

func (m MutableView[T]) Fill(x T) MutableView[T] {
	s := m.elems()
	for i := range s {
		s[i] = x
	}
	return m
}

// CopyFrom copies min(m.Len(), src.Len()) elements from src into m.
func (m MutableView[T]) CopyFrom(src View[T]) MutableView[T] {
	copy(m.elems(), src.elems())
	return m
}

func (m MutableView[T]) Slice(from, to int) MutableView[T] {
	return MutableView[T]{m.View.Slice(from, to)}
}

func (m MutableView[T]) Tail(from int) MutableView[T] {
	return MutableView[T]{m.View.Tail(from)}
}

func (m MutableView[T]) TrySlice(from, to int) (MutableView[T], error) {
	s, err := m.View.TrySlice(from, to)
	if err != nil {
		return MutableView[T]{}, err
	}
	return MutableView[T]{s}, nil
}

func (m MutableView[T]) Add(n int) MutableView[T] {
	return MutableView[T]{m.View.Add(n)}
}

func (m MutableView[T]) Sub(n int) MutableView[T] {
	return MutableView[T]{m.View.Sub(n)}
}

func (m *MutableView[T]) Inc() *MutableView[T] {
	m.View.Inc()
	return m
}

func (m *MutableView[T]) PostInc() MutableView[T] {
	return MutableView[T]{m.View.PostInc()}
}

func (m *MutableView[T]) Dec() *MutableView[T] {
	m.View.Dec()
	return m
}

func (m *MutableView[T]) PostDec() MutableView[T] {
	return MutableView[T]{m.View.PostDec()}
}

func (m *MutableView[T]) Skip(n int) *MutableView[T] {
	m.View.Skip(n)
	return m
}

func (m *MutableView[T]) Take() MutableView[T] {
	return MutableView[T]{m.View.Take()}
}

func (m *MutableView[T]) Swap(other *MutableView[T]) {
	m.View.Swap(&other.View)
}
