// Package favorites keeps the session's favorite terms.
package favorites

import "strings"

// Set is an insertion-ordered set of terms. The zero value is ready to use.
type Set struct {
	terms []string
	index map[string]struct{}
}

func New(terms ...string) *Set {
	s := &Set{}
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

func (s *Set) Contains(term string) bool {
	_, ok := s.index[term]
	return ok
}

// Add appends term if it is not already present. Blank terms are ignored.
func (s *Set) Add(term string) bool {
	if strings.TrimSpace(term) == "" || s.Contains(term) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[term] = struct{}{}
	s.terms = append(s.terms, term)
	return true
}

// Remove deletes term; removing an absent term is a no-op.
func (s *Set) Remove(term string) bool {
	if !s.Contains(term) {
		return false
	}
	delete(s.index, term)
	for i, t := range s.terms {
		if t == term {
			s.terms = append(s.terms[:i:i], s.terms[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips membership of term and reports whether it is now a favorite.
func (s *Set) Toggle(term string) bool {
	if s.Remove(term) {
		return false
	}
	return s.Add(term)
}

// List returns the favorites in insertion order.
func (s *Set) List() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

func (s *Set) Len() int {
	return len(s.terms)
}
