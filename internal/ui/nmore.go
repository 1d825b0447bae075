package ui

import (
	"fmt"
	"strings"
)

// renderMore draws the "N more" badge standing in for tags beyond the
// visible limit. When the tag cursor is inside the hidden range the badge
// unfolds into the hidden names, marking the focused one.
func renderMore(names []string, focus int) string {
	if len(names) == 0 {
		return ""
	}
	badge := moreStyle.Render(fmt.Sprintf("%d more", len(names)))
	if focus < 0 || focus >= len(names) {
		return badge
	}
	var b strings.Builder
	b.WriteString(badge)
	for i, n := range names {
		b.WriteString("\n  ")
		b.WriteString(renderTag(n, i == focus))
	}
	return b.String()
}
