package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ResultKind classifies a full lookup response by its shape.
type ResultKind int

const (
	ResultNotFound ResultKind = iota
	ResultDefinitions
	ResultRelated
)

func (k ResultKind) String() string {
	switch k {
	case ResultDefinitions:
		return "definitions"
	case ResultRelated:
		return "related"
	default:
		return "not_found"
	}
}

// Entry is the subset of a Medical Dictionary entry the app displays.
type Entry struct {
	Meta struct {
		ID string `json:"id"`
	} `json:"meta"`
	Headword struct {
		Text string `json:"hw"`
	} `json:"hwi"`
	FunctionalLabel string    `json:"fl"`
	ShortDef        *[]string `json:"shortdef"`
}

// DisplayHeadword returns the headword without syllable markers.
func (e *Entry) DisplayHeadword() string {
	if e == nil {
		return ""
	}
	return strings.ReplaceAll(e.Headword.Text, "*", "")
}

// Result is a classified full lookup. Exactly one of Definitions and
// RelatedTerms is populated, or neither when Kind is ResultNotFound.
type Result struct {
	Term         string
	Kind         ResultKind
	Entry        *Entry
	Definitions  []string
	RelatedTerms []string
}

// ParseLookup classifies a full lookup body. An object first element with a
// shortdef list yields definitions; otherwise string elements are related
// terms; anything else is not found.
func ParseLookup(term string, body []byte) (*Result, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}

	result := &Result{Term: term, Kind: ResultNotFound}
	if len(items) == 0 {
		return result, nil
	}

	if isObject(items[0]) {
		var entry Entry
		if err := json.Unmarshal(items[0], &entry); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if entry.ShortDef != nil {
			if len(*entry.ShortDef) > 0 {
				result.Kind = ResultDefinitions
				result.Entry = &entry
				result.Definitions = append([]string(nil), (*entry.ShortDef)...)
			}
			return result, nil
		}
	}

	related := stringItems(items, 0)
	if len(related) > 0 {
		result.Kind = ResultRelated
		result.RelatedTerms = related
	}
	return result, nil
}

// ParseSuggestions keeps only the plain-string elements of an autocomplete
// body, at most limit of them. Object elements describe entries for other
// spellings and are not suggestions.
func ParseSuggestions(body []byte, limit int) ([]string, error) {
	items, err := decodeArray(body)
	if err != nil {
		return nil, err
	}
	return stringItems(items, limit), nil
}

func decodeArray(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// The API answers a bad key with 200 and a plain-text notice.
		if bytes.Contains(bytes.ToLower(trimmed), []byte("invalid api key")) {
			return nil, ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedResponse)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return items, nil
}

func stringItems(items []json.RawMessage, limit int) []string {
	out := []string{}
	for _, raw := range items {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !isString(raw) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}
