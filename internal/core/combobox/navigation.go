package combobox

// NoHighlight marks the absence of a highlighted position.
const NoHighlight = -1

// Navigator tracks panel visibility and the highlighted position within the
// current filtered list. The highlight is a position, not an item, so it has
// to be revalidated whenever the filtered list changes length.
type Navigator struct {
	Open      bool
	Highlight int
}

// NewNavigator returns a navigator with nothing highlighted.
func NewNavigator(open bool) Navigator {
	return Navigator{Open: open, Highlight: NoHighlight}
}

// Show opens the panel.
func (n Navigator) Show() Navigator {
	n.Open = true
	return n
}

// Hide closes the panel and drops the highlight.
func (n Navigator) Hide() Navigator {
	n.Open = false
	n.Highlight = NoHighlight
	return n
}

// ClearHighlight drops the highlight without touching visibility.
func (n Navigator) ClearHighlight() Navigator {
	n.Highlight = NoHighlight
	return n
}

// Advance moves the highlight one step forward over a list of length n,
// wrapping to 0. Nothing happens while closed or when the list is empty.
func (n Navigator) Advance(length int) Navigator {
	if !n.Open || length == 0 {
		return n.Revalidate(length)
	}
	n.Highlight = (n.Highlight + 1) % length
	return n
}

// Retreat moves the highlight one step back, wrapping from the first
// position (or none) to the last.
func (n Navigator) Retreat(length int) Navigator {
	if !n.Open || length == 0 {
		return n.Revalidate(length)
	}
	if n.Highlight <= 0 {
		n.Highlight = length - 1
	} else {
		n.Highlight--
	}
	return n
}

// Revalidate resets the highlight when it no longer points inside a list of
// the given length.
func (n Navigator) Revalidate(length int) Navigator {
	if n.Highlight < 0 || n.Highlight >= length {
		n.Highlight = NoHighlight
	}
	return n
}

// Valid reports whether the highlight is none or inside [0, length).
func (n Navigator) Valid(length int) bool {
	return n.Highlight == NoHighlight || (n.Highlight >= 0 && n.Highlight < length)
}
