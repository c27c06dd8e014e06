// Package viewset keeps byte views in lexicographic order.
//
// A Set does not own the bytes its views refer to. Mutating the backing
// memory of a stored view breaks the ordering; use InsertCopy when the
// caller is going to reuse its buffer.
package viewset

import (
	"github.com/google/btree"
	"github.com/rawbytedev/bufref"
)

const DefaultDegree = 32

type Set struct {
	tree *btree.BTreeG[bufref.View[byte]]
}

func less(a, b bufref.View[byte]) bool {
	return bufref.Compare(a, b) < 0
}

// New returns an empty set. A degree below 2 selects DefaultDegree.
func New(degree int) *Set {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &Set{tree: btree.NewG(degree, less)}
}

// Insert adds v, replacing an equal view. It reports whether an equal view
// was already present.
func (s *Set) Insert(v bufref.View[byte]) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return replaced
}

// InsertCopy stores a private copy of v's elements.
func (s *Set) InsertCopy(v bufref.View[byte]) bool {
	return s.Insert(bufref.FromSlice(v.Clone()))
}

func (s *Set) Has(v bufref.View[byte]) bool {
	return s.tree.Has(v)
}

// Get returns the stored view equal to v.
func (s *Set) Get(v bufref.View[byte]) (bufref.View[byte], bool) {
	return s.tree.Get(v)
}

func (s *Set) Delete(v bufref.View[byte]) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

func (s *Set) Len() int { return s.tree.Len() }

func (s *Set) Min() (bufref.View[byte], bool) { return s.tree.Min() }

func (s *Set) Max() (bufref.View[byte], bool) { return s.tree.Max() }

// Ascend calls fn for every view in order until fn returns false.
func (s *Set) Ascend(fn func(bufref.View[byte]) bool) {
	s.tree.Ascend(fn)
}

// AscendFrom calls fn for every view ordered at or after pivot.
func (s *Set) AscendFrom(pivot bufref.View[byte], fn func(bufref.View[byte]) bool) {
	s.tree.AscendGreaterOrEqual(pivot, fn)
}

// Clear removes every view.
func (s *Set) Clear() {
	s.tree.Clear(false)
}
