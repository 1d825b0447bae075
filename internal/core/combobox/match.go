package combobox

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Matcher decides whether item belongs in the filtered list for query. It
// is never called with an empty query.
type Matcher[T comparable] func(query string, item T) bool

// FuzzyMatcher is the default matcher: a case-insensitive subsequence test
// against the item's label.
func FuzzyMatcher[T comparable](labelOf func(T) string) Matcher[T] {
	return func(query string, item T) bool {
		return Subsequence(query, labelOf(item))
	}
}

// Subsequence reports whether every rune of query appears in label in
// order, ignoring case. Runes need not be contiguous.
func Subsequence(query, label string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	matches := fuzzy.Find(q, []string{strings.ToLower(label)})
	if len(matches) != 1 {
		return false
	}
	// fuzzy only reports complete matches, but a partial one would break
	// the subsequence contract so check anyway
	return len(matches[0].MatchedIndexes) == utf8.RuneCountInString(q)
}

// MatchedIndexes returns the byte offsets in label of the runes matched by
// query, or nil when query does not match. Used for emphasis when rendering.
func MatchedIndexes(query, label string) []int {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{label})
	if len(matches) != 1 || len(matches[0].MatchedIndexes) != utf8.RuneCountInString(query) {
		return nil
	}
	return matches[0].MatchedIndexes
}
