package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/core/combobox"
)

// panelRows is the number of candidates drawn at once.
const panelRows = 8

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.cfg.View(m.state)

	var b strings.Builder
	if tags := m.renderTags(v.Selected); tags != "" {
		b.WriteString(tags)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())

	// an empty result is not an error state, the panel is simply absent
	if v.Open && len(v.Filtered) > 0 {
		b.WriteString("\n")
		b.WriteString(renderResults(v))
	}

	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")
	status := fmt.Sprintf("%d selected", len(v.Selected))
	if v.Open && v.Query != "" {
		status += fmt.Sprintf(" · %d matches", len(v.Filtered))
	}
	b.WriteString(renderFooter(status, m.help.View(m.keys)))
	return b.String()
}

// renderTags draws the selection as chips, collapsing anything past maxTags
// into an "N more" badge.
func (m Model) renderTags(selected []*Option) string {
	if len(selected) == 0 {
		return ""
	}
	visible, hidden := selected, []*Option(nil)
	if m.maxTags > 0 && len(selected) > m.maxTags {
		visible, hidden = selected[:m.maxTags], selected[m.maxTags:]
	}

	parts := make([]string, 0, 2*len(visible)+1)
	for i, o := range visible {
		parts = append(parts, renderTag(o.Label, i == m.tagCursor), " ")
	}
	if len(hidden) > 0 {
		focus := -1
		if m.tagCursor >= len(visible) {
			focus = m.tagCursor - len(visible)
		}
		parts = append(parts, renderMore(labelsOf(hidden), focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderResults draws a window of the filtered list that keeps the
// highlighted row visible.
func renderResults(v combobox.View[*Option]) string {
	start := 0
	if v.Highlight >= panelRows {
		start = v.Highlight - panelRows + 1
	}
	end := min(start+panelRows, len(v.Filtered))

	lines := make([]string, 0, panelRows+1)
	for i := start; i < end; i++ {
		label := emphasizeMatches(v.Filtered[i].Label, v.Query)
		if i == v.Highlight {
			lines = append(lines, cursorBarStyle.Render(" ")+hoverStyle.Render(" "+label))
		} else {
			lines = append(lines, "  "+listItemStyle.Render(label))
		}
	}
	if rest := len(v.Filtered) - end; rest > 0 {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("  … %d more", rest)))
	}
	return resultsStyle.Render(strings.Join(lines, "\n"))
}

// emphasizeMatches styles the runes of label matched by query.
func emphasizeMatches(label, query string) string {
	idx := combobox.MatchedIndexes(query, label)
	if len(idx) == 0 {
		return label
	}
	hit := make(map[int]bool, len(idx))
	for _, i := range idx {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range label {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
