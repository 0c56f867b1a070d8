// Package session holds the view state of a dictionary lookup session: the
// typed term, autocomplete suggestions, and the outcome of the latest search.
//
// Lookups are asynchronous. Every dispatched request carries the generation
// current at dispatch time and a completion is applied only while that
// generation is still current, so the latest dispatched request always wins
// regardless of the order in which responses arrive.
package session

import (
	"strings"
	"unicode/utf8"

	"github.com/meddict/meddict-tui/internal/dictionary"
)

// User-facing outcomes of a search that produced no definitions.
const (
	MsgNotFound    = "No definition found."
	MsgFetchFailed = "Error fetching data. Please try again."
)

type Options struct {
	// MinChars is the shortest term that triggers an autocomplete lookup.
	MinChars int
	// SuggestionLimit caps the suggestion list.
	SuggestionLimit int
}

// Bounds on Options. Autocomplete never fires below MinChars characters and
// never shows more than MaxSuggestions entries.
const (
	MinChars       = 3
	MaxSuggestions = 5
)

func DefaultOptions() Options {
	return Options{MinChars: MinChars, SuggestionLimit: MaxSuggestions}
}

// SuggestRequest describes an autocomplete lookup to issue.
type SuggestRequest struct {
	Gen   uint64
	Term  string
	Limit int
}

// SearchRequest describes a full lookup to issue.
type SearchRequest struct {
	Gen  uint64
	Term string
}

type State struct {
	opts Options

	term        string
	suggestions []string
	suggestGen  uint64

	searchGen    uint64
	loading      bool
	searchedTerm string
	definitions  []string
	related      []string
	entry        *dictionary.Entry
	errMsg       string
}

func New(opts Options) *State {
	if opts.MinChars < MinChars {
		opts.MinChars = MinChars
	}
	if opts.SuggestionLimit <= 0 || opts.SuggestionLimit > MaxSuggestions {
		opts.SuggestionLimit = MaxSuggestions
	}
	return &State{opts: opts}
}

func (s *State) Term() string { return s.term }
func (s *State) Suggestions() []string { return s.suggestions }
func (s *State) Loading() bool { return s.loading }
func (s *State) SearchedTerm() string { return s.searchedTerm }
func (s *State) Definitions() []string { return s.definitions }
func (s *State) RelatedTerms() []string { return s.related }
func (s *State) Entry() *dictionary.Entry { return s.entry }
func (s *State) Error() string { return s.errMsg }
func (s *State) SearchGeneration() uint64 { return s.searchGen }
func (s *State) Options() Options { return s.opts }

// CanSubmit reports whether the search affordance is enabled.
func (s *State) CanSubmit() bool {
	return !s.loading && strings.TrimSpace(s.term) != ""
}

// SetTerm records typed input. Any in-flight autocomplete becomes stale. It
// returns a request when the new term is long enough to look up; shorter
// terms clear the suggestions without a request.
func (s *State) SetTerm(term string) (SuggestRequest, bool) {
	if term == s.term {
		return SuggestRequest{}, false
	}
	s.term = term
	s.suggestGen++

	if utf8.RuneCountInString(term) < s.opts.MinChars {
		s.suggestions = nil
		return SuggestRequest{}, false
	}
	return SuggestRequest{Gen: s.suggestGen, Term: term, Limit: s.opts.SuggestionLimit}, true
}

// ApplySuggestions stores the outcome of an autocomplete lookup and reports
// whether it was current. Failed lookups leave the previous suggestions in place.
func (s *State) ApplySuggestions(gen uint64, suggestions []string, err error) bool {
	if gen != s.suggestGen {
		return false
	}
	if err != nil {
		return true
	}
	if len(suggestions) > s.opts.SuggestionLimit {
		suggestions = suggestions[:s.opts.SuggestionLimit]
	}
	s.suggestions = suggestions
	return true
}

// DismissSuggestions hides the dropdown and drops any in-flight autocomplete.
func (s *State) DismissSuggestions() {
	s.suggestions = nil
	s.suggestGen++
}

// Submit starts a search for the current term, unless the affordance is disabled.
func (s *State) Submit() (SearchRequest, bool) {
	if !s.CanSubmit() {
		return SearchRequest{}, false
	}
	return s.BeginSearch(s.term)
}

// Select sets the term to a chosen suggestion, related term or favorite and
// starts a search for it. Suggestions are cleared and not refetched.
func (s *State) Select(term string) (SearchRequest, bool) {
	if strings.TrimSpace(term) == "" {
		return SearchRequest{}, false
	}
	s.term = term
	s.DismissSuggestions()
	return s.BeginSearch(term)
}

// BeginSearch clears the previous outcome, marks the session loading and
// returns the request to issue for term, trimmed of surrounding space.
func (s *State) BeginSearch(term string) (SearchRequest, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchRequest{}, false
	}
	s.definitions = nil
	s.related = nil
	s.entry = nil
	s.errMsg = ""
	s.loading = true
	s.searchGen++
	return SearchRequest{Gen: s.searchGen, Term: term}, true
}

// ApplySearch stores the outcome of a full lookup and reports whether it was
// current. Stale outcomes are discarded untouched.
func (s *State) ApplySearch(gen uint64, term string, res *dictionary.Result, err error) bool {
	if gen != s.searchGen {
		return false
	}
	s.loading = false
	s.searchedTerm = term

	switch {
	case err != nil:
		s.errMsg = MsgFetchFailed
	case res == nil || res.Kind == dictionary.ResultNotFound:
		s.errMsg = MsgNotFound
	case res.Kind == dictionary.ResultDefinitions:
		s.definitions = res.Definitions
		s.entry = res.Entry
	case res.Kind == dictionary.ResultRelated:
		s.related = res.RelatedTerms
	}
	return true
}
