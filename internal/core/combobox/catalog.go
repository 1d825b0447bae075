package combobox

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateItem is wrapped by DuplicateItemError.
	ErrDuplicateItem = errors.New("duplicate catalog item")
	// ErrNilLabelFunc is returned when a catalog is built without a label function.
	ErrNilLabelFunc = errors.New("catalog label function is nil")
)

// DuplicateItemError reports the same identity appearing twice in a catalog.
type DuplicateItemError struct {
	Index int // position of the repeated item
	First int // position where the item was first seen
	Label string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("%v: %q at index %d (first seen at %d)", ErrDuplicateItem, e.Label, e.Index, e.First)
}

func (e *DuplicateItemError) Unwrap() error { return ErrDuplicateItem }

// Catalog is the read-only universe of selectable items. Items are compared
// with ==, so pointer types give identity semantics: two items with the same
// label are distinct unless they are the same pointer.
type Catalog[T comparable] struct {
	items   []T
	index   map[T]int
	labelOf func(T) string
}

// NewCatalog copies items into a catalog. Duplicate identities are rejected
// instead of silently dropped.
func NewCatalog[T comparable](items []T, labelOf func(T) string) (*Catalog[T], error) {
	if labelOf == nil {
		return nil, ErrNilLabelFunc
	}
	c := &Catalog[T]{
		items:   make([]T, 0, len(items)),
		index:   make(map[T]int, len(items)),
		labelOf: labelOf,
	}
	for i, it := range items {
		if first, ok := c.index[it]; ok {
			return nil, &DuplicateItemError{Index: i, First: first, Label: labelOf(it)}
		}
		c.index[it] = i
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns the catalog in iteration order. The slice is a copy.
func (c *Catalog[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog[T]) Len() int { return len(c.items) }

// Label returns the display label of item.
func (c *Catalog[T]) Label(item T) string { return c.labelOf(item) }

// Contains reports whether item is part of the catalog.
func (c *Catalog[T]) Contains(item T) bool {
	_, ok := c.index[item]
	return ok
}

// each walks the items without copying them.
func (c *Catalog[T]) each(fn func(T)) {
	for _, it := range c.items {
		fn(it)
	}
}
