package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the combobox reacts to. Keys not bound here go
// to the text input.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Commit     key.Binding
	RemoveLast key.Binding
	TagLeft    key.Binding
	TagRight   key.Binding
	RemoveTag  key.Binding
	Close      key.Binding
	Accept     key.Binding
	Abort      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "drop last"),
		),
		TagLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "tags"),
		),
		TagRight: key.NewBinding(
			key.WithKeys("right"),
		),
		RemoveTag: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "remove tag"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Accept: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "done"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Commit, k.RemoveLast, k.Accept, k.Abort}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Commit},
		{k.RemoveLast, k.TagLeft, k.RemoveTag},
		{k.Close, k.Accept, k.Abort},
	}
}
