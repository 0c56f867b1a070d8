// Package lookup is the interactive medical dictionary screen.
package lookup

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/meddict/meddict-tui/internal/components"
	"github.com/meddict/meddict-tui/internal/dictionary"
	"github.com/meddict/meddict-tui/internal/favorites"
	"github.com/meddict/meddict-tui/internal/session"
	"github.com/meddict/meddict-tui/internal/theme"
)

// Focus is the panel receiving key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusSuggestions
	FocusResults
	FocusFavorites
)

func (f Focus) String() string {
	switch f {
	case FocusSuggestions:
		return "Suggestions"
	case FocusResults:
		return "Related"
	case FocusFavorites:
		return "Favorites"
	default:
		return "Search"
	}
}

const (
	minWidth            = 40
	sideBySideMinWidth  = 90
	favoritesPanelRatio = 3
)

type Model struct {
	width  int
	height int

	dict    Dictionary
	logger  *dictionary.Logger
	timeout time.Duration

	state     *session.State
	favorites *favorites.Set

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	focus   Focus

	suggestionList *components.ListSelector
	relatedList    *components.ListSelector
	favoritesList  *components.ListSelector

	cancelSuggest context.CancelFunc
	cancelSearch  context.CancelFunc
}

type Options struct {
	Session session.Options
	// Timeout bounds each lookup; zero leaves it to the client.
	Timeout time.Duration
	Logger  *dictionary.Logger
}

func New(dict Dictionary, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorAccent)

	ti := textinput.New()
	ti.Placeholder = "Enter a medical term"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = theme.IconSearch + " "
	ti.Focus()

	logger := opts.Logger
	if logger == nil {
		logger = dictionary.NopLogger()
	}

	return Model{
		dict:           dict,
		logger:         logger,
		timeout:        opts.Timeout,
		state:          session.New(opts.Session),
		favorites:      favorites.New(),
		input:          ti,
		spinner:        s,
		help:           help.New(),
		keys:           defaultKeyMap(),
		focus:          FocusInput,
		suggestionList: components.NewListSelector("").SetSize(40, 5),
		relatedList:    components.NewListSelector("").SetSize(40, 8),
		favoritesList: components.NewListSelector("Favorites").
			SetSize(30, 10).
			SetEmptyText("No favorites added yet."),
	}
}

// Favorites exposes the session's favorite set.
func (m Model) Favorites() *favorites.Set {
	return m.favorites
}

// Focused returns the panel receiving key presses.
func (m Model) Focused() Focus {
	return m.focus
}

// available reports whether panel f has anything to interact with.
func (m Model) available(f Focus) bool {
	switch f {
	case FocusSuggestions:
		return len(m.state.Suggestions()) > 0
	case FocusResults:
		return len(m.state.RelatedTerms()) > 0
	case FocusFavorites:
		return m.favorites.Len() > 0
	default:
		return true
	}
}

func (m *Model) setFocus(f Focus) {
	if !m.available(f) {
		f = FocusInput
	}
	m.focus = f
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.suggestionList.SetFocused(f == FocusSuggestions)
	m.relatedList.SetFocused(f == FocusResults)
	m.favoritesList.SetFocused(f == FocusFavorites)
}

// cycleFocus moves to the next (or previous) panel that can take focus.
func (m *Model) cycleFocus(step int) {
	const panels = 4
	next := m.focus
	for i := 0; i < panels; i++ {
		next = Focus((int(next) + step + panels) % panels)
		if m.available(next) {
			break
		}
	}
	m.setFocus(next)
}

// syncLists copies session state into the list widgets.
func (m *Model) syncLists() {
	m.suggestionList.SetItems(components.ItemsFromStrings(m.state.Suggestions()))
	m.relatedList.SetItems(components.ItemsFromStrings(m.state.RelatedTerms()))

	favs := m.favorites.List()
	items := make([]components.ListItem, 0, len(favs))
	for _, f := range favs {
		items = append(items, components.ListItem{Label: f, Value: f, Suffix: theme.RenderFavoriteIcon(true)})
	}
	m.favoritesList.SetItems(items)

	if !m.available(m.focus) {
		m.setFocus(FocusInput)
	}
}

// favoriteTarget is the term the favorite toggle applies to: the term whose
// definitions are on screen.
func (m Model) favoriteTarget() (string, bool) {
	if len(m.state.Definitions()) == 0 {
		return "", false
	}
	return m.state.SearchedTerm(), true
}
