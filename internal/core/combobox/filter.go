package combobox

// Filter derives the candidate list from the current query and selection.
//
// An empty query yields nothing unless showWhenEmpty is set, in which case
// the full catalog is returned with selected items included. A non-empty
// query yields every unselected catalog item accepted by match, in catalog
// order.
func Filter[T comparable](c *Catalog[T], match Matcher[T], showWhenEmpty bool, query string, sel Selection[T]) []T {
	if query == "" {
		if !showWhenEmpty {
			return nil
		}
		return c.Items()
	}
	out := make([]T, 0, c.Len())
	c.each(func(it T) {
		if sel.Contains(it) {
			return
		}
		if match(query, it) {
			out = append(out, it)
		}
	})
	return out
}
