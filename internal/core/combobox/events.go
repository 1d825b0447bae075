package combobox

// Event is one discrete user interaction fed to the reducer.
type Event interface {
	event()
}

// QueryChanged carries the new raw text of the input.
type QueryChanged struct{ Query string }

// ItemCommitted turns a clicked or highlighted candidate into a selection.
type ItemCommitted[T comparable] struct{ Item T }

// ItemRemoved drops a selected item, e.g. from a tag's delete button.
type ItemRemoved[T comparable] struct{ Item T }

// AdvanceHighlight moves the highlight forward (Tab).
type AdvanceHighlight struct{}

// RetreatHighlight moves the highlight backward (Shift+Tab).
type RetreatHighlight struct{}

// RemoveLast drops the most recently selected item (Backspace on an empty query).
type RemoveLast struct{}

// Focus is sent when the input gains focus.
type Focus struct{}

// Blur is sent when the input loses focus or the user interacts outside.
type Blur struct{}

// Reset clears the query and highlight on the caller's request.
type Reset struct{}

func (QueryChanged) event()     {}
func (ItemCommitted[T]) event() {}
func (ItemRemoved[T]) event()   {}
func (AdvanceHighlight) event() {}
func (RetreatHighlight) event() {}
func (RemoveLast) event()       {}
func (Focus) event()            {}
func (Blur) event()             {}
func (Reset) event()            {}
