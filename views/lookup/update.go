package lookup

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meddict/meddict-tui/internal/session"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SuggestionsMsg:
		return m.handleSuggestions(msg), nil

	case SearchResultMsg:
		return m.handleSearchResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSuggestions(msg SuggestionsMsg) Model {
	applied := m.state.ApplySuggestions(msg.Request.Gen, msg.Suggestions, msg.Err)
	if !applied {
		m.logger.Debug("autocomplete", "discarded stale suggestions", map[string]interface{}{
			"term": msg.Request.Term,
		})
		return m
	}
	if msg.Err != nil {
		m.logger.Warning("autocomplete", "suggestions unavailable, keeping previous list", map[string]interface{}{
			"term":  msg.Request.Term,
			"error": msg.Err.Error(),
		})
		return m
	}
	m.syncLists()
	return m
}

func (m Model) handleSearchResult(msg SearchResultMsg) Model {
	applied := m.state.ApplySearch(msg.Request.Gen, msg.Request.Term, msg.Result, msg.Err)
	if !applied {
		m.logger.Debug("search", "discarded stale result", map[string]interface{}{
			"term": msg.Request.Term,
		})
		return m
	}

	if msg.Err != nil {
		m.logger.Error("search", "error fetching definitions for "+msg.Request.Term, msg.Err)
	} else if msg.Result != nil {
		m.logger.Info("search", "lookup complete", map[string]interface{}{
			"term":        msg.Request.Term,
			"kind":        msg.Result.Kind.String(),
			"duration_ms": msg.Duration.Milliseconds(),
		})
	}

	m.relatedList.MoveToFirst()
	m.syncLists()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()

	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite()
		return m, nil
	}

	switch m.focus {
	case FocusSuggestions:
		return m.handleListKey(msg, m.suggestionList.MoveUp, m.suggestionList.MoveDown, m.selectSuggestion)
	case FocusResults:
		return m.handleListKey(msg, m.relatedList.MoveUp, m.relatedList.MoveDown, m.selectRelated)
	case FocusFavorites:
		if key.Matches(msg, m.keys.RemoveFavorite) {
			m.removeFavorite()
			return m, nil
		}
		return m.handleListKey(msg, m.favoritesList.MoveUp, m.favoritesList.MoveDown, m.selectFavorite)
	default:
		return m.handleInputKey(msg)
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.submit()

	case key.Matches(msg, m.keys.Down):
		if m.available(FocusSuggestions) {
			m.setFocus(FocusSuggestions)
			m.suggestionList.MoveToFirst()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.cancelSuggestions()
		m.state.DismissSuggestions()
		m.syncLists()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.input.Value() != m.state.Term() {
		req, ok := m.state.SetTerm(m.input.Value())
		if ok {
			cmds = append(cmds, m.fetchSuggestions(req))
		} else {
			m.cancelSuggestions()
		}
		m.syncLists()
	}

	return m, tea.Batch(cmds...)
}

// handleListKey applies the shared list bindings; choose runs on Enter.
func (m Model) handleListKey(msg tea.KeyMsg, up, down func(), choose func() (Model, tea.Cmd)) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		up()
	case key.Matches(msg, m.keys.Down):
		down()
	case key.Matches(msg, m.keys.Enter):
		return choose()
	case key.Matches(msg, m.keys.Back):
		m.setFocus(FocusInput)
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	req, ok := m.state.Submit()
	if !ok {
		return m, nil
	}
	return m.startSearch(req, false)
}

func (m Model) selectSuggestion() (Model, tea.Cmd) {
	item, ok := m.suggestionList.CurrentItem()
	if !ok {
		return m, nil
	}
	return m.selectTerm(item.Value)
}

func (m Model) selectRelated() (Model, tea.Cmd) {
	item, ok := m.relatedList.CurrentItem()
	if !ok {
		return m, nil
	}
	return m.selectTerm(item.Value)
}

func (m Model) selectFavorite() (Model, tea.Cmd) {
	item, ok := m.favoritesList.CurrentItem()
	if !ok {
		return m, nil
	}
	return m.selectTerm(item.Value)
}

// selectTerm replaces the typed term with term and searches for it.
func (m Model) selectTerm(term string) (Model, tea.Cmd) {
	spinning := m.state.Loading()
	req, ok := m.state.Select(term)
	if !ok {
		return m, nil
	}
	m.cancelSuggestions()
	m.input.SetValue(term)
	m.input.CursorEnd()
	return m.startSearch(req, spinning)
}

// startSearch dispatches req. The spinner is only started when it is not
// already ticking for an earlier search.
func (m Model) startSearch(req session.SearchRequest, spinning bool) (Model, tea.Cmd) {
	m.logger.Info("search", "lookup started", map[string]interface{}{"term": req.Term})
	m.syncLists()
	m.setFocus(FocusInput)

	cmds := []tea.Cmd{m.fetchDefinitions(req)}
	if !spinning {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFavorite() {
	term, ok := m.favoriteTarget()
	if !ok {
		return
	}
	m.favorites.Toggle(term)
	m.syncLists()
}

func (m *Model) removeFavorite() {
	item, ok := m.favoritesList.CurrentItem()
	if !ok {
		return
	}
	m.favorites.Remove(item.Value)
	m.syncLists()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.cancelSuggestions()
	m.cancelSearches()
	return m, tea.Quit
}
