// Package combobox implements the state machine behind a multi-select
// combobox: which candidates are shown, which one is highlighted, and how
// the selection changes in response to one input event at a time.
//
// Config.Reduce is a pure function of (state, event). Combobox wraps it for
// a single owner and dispatches the resulting notifications to callbacks.
// Nothing in this package spawns goroutines, starts timers or does I/O.
package combobox

import "errors"

// ErrNilCatalog is returned when a combobox is built without a catalog.
var ErrNilCatalog = errors.New("combobox catalog is nil")

// Options configures a Combobox. Only the catalog passed to New is required.
type Options[T comparable] struct {
	// Match replaces the default fuzzy matcher. It receives the raw query.
	Match Matcher[T]
	// Selected pre-seeds the selection; items need not be in the catalog.
	Selected []T
	// ShowOptionsWhenEmpty lists the whole catalog while the query is empty.
	ShowOptionsWhenEmpty bool
	DefaultOpen          bool
	Placeholder          string

	OnChange func(Selection[T])
	// OnQueryChange receives the query text whenever it changes, including
	// the reset that follows a commit.
	OnQueryChange func(string)
	OnFocus       func()
	OnBlur        func()
}

// Config is the immutable part of a combobox. It can be shared between
// widget instances rendering the same catalog.
type Config[T comparable] struct {
	catalog       *Catalog[T]
	match         Matcher[T]
	showWhenEmpty bool
	placeholder   string
}

// NewConfig binds a catalog to a matcher. A nil matcher selects FuzzyMatcher.
func NewConfig[T comparable](c *Catalog[T], match Matcher[T], showWhenEmpty bool, placeholder string) (Config[T], error) {
	if c == nil {
		return Config[T]{}, ErrNilCatalog
	}
	if match == nil {
		match = FuzzyMatcher(c.labelOf)
	}
	return Config[T]{catalog: c, match: match, showWhenEmpty: showWhenEmpty, placeholder: placeholder}, nil
}

// Catalog returns the bound catalog.
func (c Config[T]) Catalog() *Catalog[T] { return c.catalog }

// State is the mutable, single-owner part of a combobox.
type State[T comparable] struct {
	Query     string
	Selection Selection[T]
	Nav       Navigator
}

// Initial returns the state a widget starts in.
func (c Config[T]) Initial(selected []T, open bool) State[T] {
	return State[T]{Selection: NewSelection(selected...), Nav: NewNavigator(open)}
}

// Change describes a selection mutation. Selection is the new snapshot.
// Added is empty when an already-selected item was committed again.
type Change[T comparable] struct {
	Selection Selection[T]
	Added     []T
	Removed   []T
}

// Step is the outcome of reducing one event.
type Step[T comparable] struct {
	State State[T]
	// Change is nil unless the event went through add or remove.
	Change *Change[T]
	// PreventDefault asks the renderer to swallow the platform's default
	// handling of the key, e.g. focus traversal on Tab.
	PreventDefault bool
}

// Filtered returns the candidate list for s.
func (c Config[T]) Filtered(s State[T]) []T {
	return Filter(c.catalog, c.match, c.showWhenEmpty, s.Query, s.Selection)
}

// Reduce applies ev to s. It is pure: the same inputs always give the same
// Step. Panics raised by the matcher or label function are not recovered.
func (c Config[T]) Reduce(s State[T], ev Event) Step[T] {
	step := Step[T]{State: s}
	next := &step.State

	switch e := ev.(type) {
	case QueryChanged:
		next.Query = e.Query
		next.Nav = s.Nav.Show()

	case ItemCommitted[T]:
		// the query is cleared and onChange fires even for an item that is
		// already selected; only membership is idempotent
		change := &Change[T]{}
		if !s.Selection.Contains(e.Item) {
			change.Added = []T{e.Item}
		}
		next.Selection = s.Selection.Add(e.Item)
		next.Query = ""
		next.Nav = s.Nav.ClearHighlight()
		change.Selection = next.Selection
		step.Change = change

	case ItemRemoved[T]:
		if s.Selection.Contains(e.Item) {
			next.Selection = s.Selection.Remove(e.Item)
			step.Change = &Change[T]{Selection: next.Selection, Removed: []T{e.Item}}
		}

	case AdvanceHighlight:
		next.Nav = s.Nav.Advance(len(c.Filtered(s)))
		step.PreventDefault = s.Nav.Open

	case RetreatHighlight:
		next.Nav = s.Nav.Retreat(len(c.Filtered(s)))
		step.PreventDefault = s.Nav.Open

	case RemoveLast:
		if s.Query != "" {
			break
		}
		if last, ok := s.Selection.Last(); ok {
			next.Selection = s.Selection.RemoveLast()
			step.Change = &Change[T]{Selection: next.Selection, Removed: []T{last}}
		}

	case Focus:
		next.Nav = s.Nav.Show()

	case Blur:
		next.Nav = s.Nav.Hide()

	case Reset:
		next.Query = ""
		next.Nav = s.Nav.ClearHighlight()
	}

	next.Nav = next.Nav.Revalidate(len(c.Filtered(*next)))
	return step
}

// Highlighted returns the item under the highlight of s, if any.
func (c Config[T]) Highlighted(s State[T]) (T, bool) {
	var zero T
	h := s.Nav.Highlight
	if h == NoHighlight {
		return zero, false
	}
	items := c.Filtered(s)
	if h < 0 || h >= len(items) {
		return zero, false
	}
	return items[h], true
}

// View is everything a renderer needs for one frame.
type View[T comparable] struct {
	Open        bool
	Query       string
	Placeholder string
	Filtered    []T
	Highlight   int
	Selected    []T
}

// View derives the render view of s.
func (c Config[T]) View(s State[T]) View[T] {
	return View[T]{
		Open:        s.Nav.Open,
		Query:       s.Query,
		Placeholder: c.placeholder,
		Filtered:    c.Filtered(s),
		Highlight:   s.Nav.Highlight,
		Selected:    s.Selection.Items(),
	}
}

// Combobox owns the state of one widget instance. It is not safe for
// concurrent use; events must be dispatched from a single goroutine in the
// order they arrive.
type Combobox[T comparable] struct {
	cfg           Config[T]
	state         State[T]
	onChange      func(Selection[T])
	onQueryChange func(string)
	onFocus       func()
	onBlur        func()
}

// New builds a combobox over catalog.
func New[T comparable](catalog *Catalog[T], opts Options[T]) (*Combobox[T], error) {
	cfg, err := NewConfig(catalog, opts.Match, opts.ShowOptionsWhenEmpty, opts.Placeholder)
	if err != nil {
		return nil, err
	}
	return &Combobox[T]{
		cfg:           cfg,
		state:         cfg.Initial(opts.Selected, opts.DefaultOpen),
		onChange:      opts.OnChange,
		onQueryChange: opts.OnQueryChange,
		onFocus:       opts.OnFocus,
		onBlur:        opts.OnBlur,
	}, nil
}

// Dispatch reduces ev against the current state, stores the result and then
// fires the callbacks it implies.
func (b *Combobox[T]) Dispatch(ev Event) Step[T] {
	prev := b.state.Query
	step := b.cfg.Reduce(b.state, ev)
	b.state = step.State

	if step.Change != nil && b.onChange != nil {
		b.onChange(step.Change.Selection)
	}
	if b.state.Query != prev && b.onQueryChange != nil {
		b.onQueryChange(b.state.Query)
	}
	switch ev.(type) {
	case Focus:
		if b.onFocus != nil {
			b.onFocus()
		}
	case Blur:
		if b.onBlur != nil {
			b.onBlur()
		}
	}
	return step
}

// Config returns the immutable configuration.
func (b *Combobox[T]) Config() Config[T] { return b.cfg }

// State returns the current state.
func (b *Combobox[T]) State() State[T] { return b.state }

// Selection returns a snapshot of the current selection.
func (b *Combobox[T]) Selection() Selection[T] { return b.state.Selection }

// View returns the current render view.
func (b *Combobox[T]) View() View[T] { return b.cfg.View(b.state) }

// Highlighted returns the item under the highlight, if any.
func (b *Combobox[T]) Highlighted() (T, bool) { return b.cfg.Highlighted(b.state) }
