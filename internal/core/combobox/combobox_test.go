package combobox

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFruitBox(t *testing.T, opts Options[*fruit], names ...string) (*Combobox[*fruit], []*fruit) {
	t.Helper()
	c, items := newFruitCatalog(t, names...)
	b, err := New(c, opts)
	require.NoError(t, err)
	return b, items
}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func TestNewRequiresCatalog(t *testing.T) {
	_, err := New[*fruit](nil, Options[*fruit]{})
	require.ErrorIs(t, err, ErrNilCatalog)
}

func TestMonthsScenario(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{}, months...)
	b.Dispatch(QueryChanged{Query: "Jan"})
	v := b.View()
	require.True(t, v.Open)
	require.Equal(t, []string{"January"}, labels(v.Filtered))
}

func TestShowOptionsWhenEmptyOnFocus(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{ShowOptionsWhenEmpty: true}, "Mango", "Banana", "Apple")
	require.False(t, b.View().Open)

	b.Dispatch(Focus{})
	v := b.View()
	require.True(t, v.Open)
	require.Equal(t, []string{"Mango", "Banana", "Apple"}, labels(v.Filtered))
	require.Equal(t, NoHighlight, v.Highlight)
}

func TestEmptyQueryWithoutShowAll(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{}, "Mango", "Banana", "Apple")
	require.Empty(t, b.View().Filtered)
	b.Dispatch(Focus{})
	require.Empty(t, b.View().Filtered)
}

func TestAdvanceWithNothingToShowKeepsPanelClosed(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{}, "Mango", "Banana")
	step := b.Dispatch(AdvanceHighlight{})
	require.False(t, step.PreventDefault)
	require.False(t, step.State.Nav.Open)
	require.Equal(t, NoHighlight, step.State.Nav.Highlight)

	b.Dispatch(Focus{})
	step = b.Dispatch(AdvanceHighlight{})
	require.True(t, step.PreventDefault)
	require.Equal(t, NoHighlight, step.State.Nav.Highlight)
}

func TestAdvanceCyclesThroughFiltered(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{}, "Mango", "Banana", "Apple")
	b.Dispatch(QueryChanged{Query: "an"})

	var got []int
	for i := 0; i < 3; i++ {
		got = append(got, b.Dispatch(AdvanceHighlight{}).State.Nav.Highlight)
	}
	require.Equal(t, []int{0, 1, 0}, got)

	step := b.Dispatch(RetreatHighlight{})
	require.True(t, step.PreventDefault)
	require.Equal(t, 1, step.State.Nav.Highlight)
}

func TestCommitAddsAndResetsQuery(t *testing.T) {
	var changes []Selection[*fruit]
	b, items := newFruitBox(t, Options[*fruit]{
		OnChange: func(s Selection[*fruit]) { changes = append(changes, s) },
	}, "Mango", "Banana", "Apple")

	b.Dispatch(QueryChanged{Query: "an"})
	b.Dispatch(AdvanceHighlight{})
	it, ok := b.Highlighted()
	require.True(t, ok)
	require.Same(t, items[0], it)

	step := b.Dispatch(ItemCommitted[*fruit]{Item: it})
	require.NotNil(t, step.Change)
	require.Equal(t, []*fruit{items[0]}, step.Change.Added)
	require.Equal(t, "", step.State.Query)
	require.True(t, step.State.Nav.Open)
	require.Equal(t, NoHighlight, step.State.Nav.Highlight)
	require.Len(t, changes, 1)
	require.Equal(t, []string{"Mango"}, labels(changes[0].Items()))

	// typing again no longer offers the selected item
	b.Dispatch(QueryChanged{Query: "an"})
	require.Equal(t, []string{"Banana"}, labels(b.View().Filtered))
}

func TestCommitAlreadySelectedStillNotifies(t *testing.T) {
	calls := 0
	b, items := newFruitBox(t, Options[*fruit]{
		OnChange: func(Selection[*fruit]) { calls++ },
	}, "Mango", "Banana")

	b.Dispatch(ItemCommitted[*fruit]{Item: items[0]})
	b.Dispatch(QueryChanged{Query: "x"})
	step := b.Dispatch(ItemCommitted[*fruit]{Item: items[0]})

	require.Equal(t, 2, calls)
	require.Empty(t, step.Change.Added)
	require.Equal(t, "", step.State.Query)
	require.Equal(t, 1, b.Selection().Len())
}

func TestItemRemoved(t *testing.T) {
	calls := 0
	b, items := newFruitBox(t, Options[*fruit]{
		OnChange: func(Selection[*fruit]) { calls++ },
	}, "Mango", "Banana")
	b.Dispatch(ItemCommitted[*fruit]{Item: items[0]})

	step := b.Dispatch(ItemRemoved[*fruit]{Item: items[1]})
	require.Nil(t, step.Change)
	require.Equal(t, 1, calls)

	step = b.Dispatch(ItemRemoved[*fruit]{Item: items[0]})
	require.NotNil(t, step.Change)
	require.Equal(t, []*fruit{items[0]}, step.Change.Removed)
	require.Equal(t, 0, b.Selection().Len())
	require.Equal(t, 2, calls)
}

func TestRemoveLastOnlyOnEmptyQuery(t *testing.T) {
	a, bb, c := &fruit{"A"}, &fruit{"B"}, &fruit{"C"}
	cat, err := NewCatalog([]*fruit{a, bb, c}, fruitLabel)
	require.NoError(t, err)
	box, err := New(cat, Options[*fruit]{Selected: []*fruit{a, bb, c}})
	require.NoError(t, err)

	box.Dispatch(QueryChanged{Query: "x"})
	step := box.Dispatch(RemoveLast{})
	require.Nil(t, step.Change)
	require.Equal(t, []string{"A", "B", "C"}, labels(box.View().Selected))

	box.Dispatch(QueryChanged{Query: ""})
	step = box.Dispatch(RemoveLast{})
	require.NotNil(t, step.Change)
	require.Equal(t, []*fruit{c}, step.Change.Removed)
	require.Equal(t, []string{"A", "B"}, labels(box.View().Selected))
}

func TestPreseededSelectionOutsideCatalog(t *testing.T) {
	stranger := &fruit{"Durian"}
	b, _ := newFruitBox(t, Options[*fruit]{Selected: []*fruit{stranger}}, "Mango")
	require.Equal(t, []string{"Durian"}, labels(b.View().Selected))
	b.Dispatch(RemoveLast{})
	require.Equal(t, 0, b.Selection().Len())
}

func TestQueryShrinkResetsHighlight(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{}, "Mango", "Banana", "Mandarin", "Apple")
	b.Dispatch(QueryChanged{Query: "an"})
	require.Len(t, b.View().Filtered, 3)
	for i := 0; i < 3; i++ {
		b.Dispatch(AdvanceHighlight{})
	}
	require.Equal(t, 2, b.View().Highlight)

	step := b.Dispatch(QueryChanged{Query: "ana"})
	require.Equal(t, []string{"Banana", "Mandarin"}, labels(b.View().Filtered))
	require.Equal(t, NoHighlight, step.State.Nav.Highlight)

	b.Dispatch(AdvanceHighlight{})
	step = b.Dispatch(QueryChanged{Query: "an"})
	require.Equal(t, 0, step.State.Nav.Highlight, "highlight inside the new list is kept")
}

func TestFocusBlurHooks(t *testing.T) {
	var trail []string
	b, _ := newFruitBox(t, Options[*fruit]{
		ShowOptionsWhenEmpty: true,
		OnFocus:              func() { trail = append(trail, "focus") },
		OnBlur:               func() { trail = append(trail, "blur") },
	}, "Mango")

	b.Dispatch(Focus{})
	b.Dispatch(AdvanceHighlight{})
	require.Equal(t, 0, b.View().Highlight)
	b.Dispatch(Blur{})
	require.False(t, b.View().Open)
	require.Equal(t, NoHighlight, b.View().Highlight)
	require.Equal(t, []string{"focus", "blur"}, trail)
}

func TestDefaultOpenAndReset(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{DefaultOpen: true, Placeholder: "pick"}, "Mango")
	v := b.View()
	require.True(t, v.Open)
	require.Equal(t, "pick", v.Placeholder)

	b.Dispatch(QueryChanged{Query: "m"})
	b.Dispatch(AdvanceHighlight{})
	step := b.Dispatch(Reset{})
	require.Equal(t, "", step.State.Query)
	require.Equal(t, NoHighlight, step.State.Nav.Highlight)
	require.True(t, step.State.Nav.Open)
}

func TestReduceIsPure(t *testing.T) {
	c, items := newFruitCatalog(t, "Mango", "Banana", "Apple")
	cfg, err := NewConfig(c, nil, true, "")
	require.NoError(t, err)

	s := cfg.Initial([]*fruit{items[2]}, true)
	first := cfg.Reduce(s, ItemCommitted[*fruit]{Item: items[0]})
	second := cfg.Reduce(s, ItemCommitted[*fruit]{Item: items[0]})

	require.Equal(t, first.State.Query, second.State.Query)
	require.Equal(t, first.State.Nav, second.State.Nav)
	require.True(t, first.State.Selection.Equal(second.State.Selection))
	require.Equal(t, 1, s.Selection.Len(), "input state must not change")
}

func TestMatcherPanicPropagates(t *testing.T) {
	b, _ := newFruitBox(t, Options[*fruit]{
		Match: func(string, *fruit) bool { panic("boom") },
	}, "Mango")
	require.PanicsWithValue(t, "boom", func() {
		b.Dispatch(QueryChanged{Query: "m"})
	})
}

func TestHighlightAlwaysValid(t *testing.T) {
	c, items := newFruitCatalog(t, "Mango", "Banana", "Apple", "Mandarin", "Papaya", "Pear")
	queries := []string{"", "a", "an", "p", "pa", "zz", "m"}

	for _, showAll := range []bool{false, true} {
		cfg, err := NewConfig(c, nil, showAll, "")
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(7))
		s := cfg.Initial(nil, false)

		for i := 0; i < 2000; i++ {
			var ev Event
			switch rng.Intn(9) {
			case 0:
				ev = QueryChanged{Query: queries[rng.Intn(len(queries))]}
			case 1:
				ev = ItemCommitted[*fruit]{Item: items[rng.Intn(len(items))]}
			case 2:
				ev = ItemRemoved[*fruit]{Item: items[rng.Intn(len(items))]}
			case 3, 4:
				ev = AdvanceHighlight{}
			case 5:
				ev = RetreatHighlight{}
			case 6:
				ev = RemoveLast{}
			case 7:
				ev = Focus{}
			default:
				ev = Blur{}
			}
			s = cfg.Reduce(s, ev).State
			n := len(cfg.Filtered(s))
			require.True(t, s.Nav.Valid(n), "step %d: highlight %d with %d items after %T", i, s.Nav.Highlight, n, ev)
			if n == 0 {
				require.Equal(t, NoHighlight, s.Nav.Highlight)
			}
		}
	}
}

func TestQueryChangeHook(t *testing.T) {
	var queries []string
	b, items := newFruitBox(t, Options[*fruit]{
		OnQueryChange: func(q string) { queries = append(queries, q) },
	}, "Mango", "Banana")

	b.Dispatch(QueryChanged{Query: "m"})
	b.Dispatch(QueryChanged{Query: "m"})
	b.Dispatch(AdvanceHighlight{})
	b.Dispatch(ItemCommitted[*fruit]{Item: items[0]})
	b.Dispatch(Reset{})
	require.Equal(t, []string{"m", ""}, queries, "fires on real changes only, commit reset included")
}

func TestConfigHighlighted(t *testing.T) {
	c, items := newFruitCatalog(t, "Mango", "Banana", "Apple")
	cfg, err := NewConfig(c, nil, false, "")
	require.NoError(t, err)

	s := cfg.Initial(nil, false)
	_, ok := cfg.Highlighted(s)
	require.False(t, ok)

	s = cfg.Reduce(s, QueryChanged{Query: "an"}).State
	s = cfg.Reduce(s, AdvanceHighlight{}).State
	s = cfg.Reduce(s, AdvanceHighlight{}).State
	it, ok := cfg.Highlighted(s)
	require.True(t, ok)
	require.Same(t, items[1], it)

	s.Nav.Highlight = 5
	_, ok = cfg.Highlighted(s)
	require.False(t, ok, "stale index outside the filtered list")
}
