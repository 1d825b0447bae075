package combobox

import (
	"github.com/emirpasic/gods/v2/sets/linkedhashset"
)

// Selection is an immutable ordered set of items. Every mutation returns a
// new Selection and leaves the receiver untouched, so a Selection handed to
// an observer is a snapshot. The zero value is an empty selection.
type Selection[T comparable] struct {
	set *linkedhashset.Set[T]
}

// NewSelection builds a selection from items in order, dropping repeats.
func NewSelection[T comparable](items ...T) Selection[T] {
	if len(items) == 0 {
		return Selection[T]{}
	}
	return Selection[T]{set: linkedhashset.New[T](items...)}
}

// Add returns a selection with item appended. If item is already a member
// the receiver is returned unchanged.
func (s Selection[T]) Add(item T) Selection[T] {
	if s.Contains(item) {
		return s
	}
	next := s.clone()
	next.Add(item)
	return Selection[T]{set: next}
}

// Remove returns a selection without item. Removing a non-member is a
// no-op.
func (s Selection[T]) Remove(item T) Selection[T] {
	if !s.Contains(item) {
		return s
	}
	next := s.clone()
	next.Remove(item)
	return Selection[T]{set: next}
}

// RemoveLast drops the most recently added member.
func (s Selection[T]) RemoveLast() Selection[T] {
	last, ok := s.Last()
	if !ok {
		return s
	}
	return s.Remove(last)
}

// Contains reports membership in O(1) on average.
func (s Selection[T]) Contains(item T) bool {
	return s.set != nil && s.set.Contains(item)
}

// Len returns the number of members.
func (s Selection[T]) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Last returns the most recently added member.
func (s Selection[T]) Last() (T, bool) {
	var zero T
	items := s.Items()
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Items returns members in insertion order. The slice is a copy.
func (s Selection[T]) Items() []T {
	if s.set == nil {
		return nil
	}
	return s.set.Values()
}

// Equal compares membership, ignoring insertion order.
func (s Selection[T]) Equal(o Selection[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, it := range s.Items() {
		if !o.Contains(it) {
			return false
		}
	}
	return true
}

func (s Selection[T]) clone() *linkedhashset.Set[T] {
	return linkedhashset.New[T](s.Items()...)
}
