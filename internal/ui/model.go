// Package ui renders the combobox in a terminal with bubbletea. The model
// translates key and focus messages into combobox events and draws whatever
// view the reducer produces; it holds no selection logic of its own.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"multiselect/internal/core/combobox"
	"multiselect/internal/infra/logx"
)

// Settings configures a Model.
type Settings struct {
	Placeholder          string
	ShowOptionsWhenEmpty bool
	DefaultOpen          bool
	// MaxTags is the number of tags drawn before the rest collapse into an
	// "N more" badge. Zero draws every tag.
	MaxTags  int
	Selected []*Option
	Match    combobox.Matcher[*Option]
}

// SelectionChangedMsg is emitted after every add or remove.
type SelectionChangedMsg struct {
	Selected []*Option
	Added    []*Option
	Removed  []*Option
}

type Model struct {
	id    string // widget instance, for log correlation
	cfg   combobox.Config[*Option]
	state combobox.State[*Option]

	input textinput.Model
	keys  KeyMap
	help  help.Model

	maxTags   int
	tagCursor int // index into the selection, -1 while typing
	width     int

	accepted bool
	quitting bool
}

// New builds a model over options. It fails when options contains the same
// pointer twice.
func New(options []*Option, s Settings) (Model, error) {
	catalog, err := combobox.NewCatalog(options, OptionLabel)
	if err != nil {
		return Model{}, fmt.Errorf("build catalog: %w", err)
	}
	cfg, err := combobox.NewConfig(catalog, s.Match, s.ShowOptionsWhenEmpty, s.Placeholder)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = s.Placeholder
	ti.Prompt = "› "
	ti.PlaceholderStyle = placeholderStyle
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	m := Model{
		id:        uuid.NewString(),
		cfg:       cfg,
		state:     cfg.Initial(s.Selected, s.DefaultOpen),
		input:     ti,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		maxTags:   s.MaxTags,
		tagCursor: -1,
	}
	logx.Infow("combobox created", logx.Fields{
		"widget":   m.id,
		"options":  catalog.Len(),
		"selected": m.state.Selection.Len(),
	})
	return m, nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Selected returns the selection in insertion order.
func (m Model) Selected() []*Option { return m.state.Selection.Items() }

// Accepted reports whether the user confirmed the selection before exiting.
func (m Model) Accepted() bool { return m.accepted }

// ID returns the widget instance id used in logs.
func (m Model) ID() string { return m.id }

// Options returns every option of the catalog in order.
func (m Model) Options() []*Option { return m.cfg.Catalog().Items() }

// highlighted returns the option under the highlight.
func (m Model) highlighted() (*Option, bool) { return m.cfg.Highlighted(m.state) }
