package ui

import (
	"github.com/charmbracelet/x/ansi"
)

// maxTagLabel bounds a tag's label width in cells.
const maxTagLabel = 24

// renderTag draws one selected item as a chip with a delete glyph. The
// focused chip is the one the delete key removes.
func renderTag(label string, focused bool) string {
	style := tagStyle
	if focused {
		style = tagFocusStyle
	}
	return style.Render(truncateLabel(label, maxTagLabel) + " " + tagDeleteStyle.Render("×"))
}

func truncateLabel(label string, width int) string {
	return ansi.Truncate(label, width, "…")
}
