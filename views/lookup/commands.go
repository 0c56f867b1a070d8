package lookup

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meddict/meddict-tui/internal/dictionary"
	"github.com/meddict/meddict-tui/internal/session"
)

// Dictionary is the lookup backend the view depends on.
type Dictionary interface {
	Suggest(ctx context.Context, term string, limit int) ([]string, error)
	Define(ctx context.Context, term string) (*dictionary.Result, error)
}

// SuggestionsMsg carries the outcome of an autocomplete lookup.
type SuggestionsMsg struct {
	Request     session.SuggestRequest
	Suggestions []string
	Err         error
}

// SearchResultMsg carries the outcome of a full lookup.
type SearchResultMsg struct {
	Request  session.SearchRequest
	Result   *dictionary.Result
	Err      error
	Duration time.Duration
}

func (m *Model) requestContext() (context.Context, context.CancelFunc) {
	if m.timeout > 0 {
		return context.WithTimeout(context.Background(), m.timeout)
	}
	return context.WithCancel(context.Background())
}

// fetchSuggestions issues req, cancelling any autocomplete still in flight.
func (m *Model) fetchSuggestions(req session.SuggestRequest) tea.Cmd {
	m.cancelSuggestions()
	ctx, cancel := m.requestContext()
	m.cancelSuggest = cancel

	dict := m.dict
	return func() tea.Msg {
		defer cancel()
		suggestions, err := dict.Suggest(ctx, req.Term, req.Limit)
		return SuggestionsMsg{Request: req, Suggestions: suggestions, Err: err}
	}
}

// fetchDefinitions issues req, cancelling any search still in flight.
func (m *Model) fetchDefinitions(req session.SearchRequest) tea.Cmd {
	m.cancelSearches()
	ctx, cancel := m.requestContext()
	m.cancelSearch = cancel

	dict := m.dict
	return func() tea.Msg {
		defer cancel()
		start := time.Now()
		res, err := dict.Define(ctx, req.Term)
		return SearchResultMsg{Request: req, Result: res, Err: err, Duration: time.Since(start)}
	}
}

func (m *Model) cancelSuggestions() {
	if m.cancelSuggest != nil {
		m.cancelSuggest()
		m.cancelSuggest = nil
	}
}

func (m *Model) cancelSearches() {
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
}
