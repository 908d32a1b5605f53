// Package picker holds the filter and selection state of one picker session.
package picker

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrNoSelection        = errors.New("no candidate selected")
	ErrEmptyCandidateList = errors.New("no candidates to pick from")
)

// Selector filters a fixed candidate list by a query and tracks at most one
// highlighted candidate. It is not safe for concurrent use.
type Selector struct {
	candidates []string
	matcher    Matcher
	query      string

	view  []int
	stale bool

	// selected is an index into candidates, or -1.
	selected  int
	done      bool
	cancelled bool
}

type Option func(*Selector)

func WithMatcher(m Matcher) Option {
	return func(s *Selector) {
		if m != nil {
			s.matcher = m
		}
	}
}

func WithQuery(query string) Option {
	return func(s *Selector) {
		s.query = query
	}
}

// New starts a session over candidates. Duplicate labels keep their first
// occurrence.
func New(candidates []string, opts ...Option) (*Selector, error) {
	unique := Dedupe(candidates)
	if len(unique) == 0 {
		return nil, ErrEmptyCandidateList
	}

	s := &Selector{
		candidates: unique,
		matcher:    SubstringMatcher{},
		selected:   -1,
		stale:      true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refresh()
	return s, nil
}

// Dedupe drops empty labels and repeats, keeping first occurrences in order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func (s *Selector) Candidates() []string {
	return s.candidates
}

func (s *Selector) Query() string {
	return s.query
}

func (s *Selector) SetQuery(text string) {
	if s.done || text == s.query {
		return
	}
	s.query = text
	s.stale = true
}

func (s *Selector) AppendChar(r rune) {
	if s.done || !utf8.ValidRune(r) {
		return
	}
	s.query += string(r)
	s.stale = true
}

func (s *Selector) Backspace() {
	if s.done || s.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.query)
	s.query = s.query[:len(s.query)-size]
	s.stale = true
}

// FilteredIndices returns the candidate indices visible for the current query.
func (s *Selector) FilteredIndices() []int {
	s.refresh()
	return s.view
}

func (s *Selector) Filtered() []string {
	s.refresh()
	out := make([]string, 0, len(s.view))
	for _, i := range s.view {
		out = append(out, s.candidates[i])
	}
	return out
}

// Selected reports the highlighted position within the filtered view.
func (s *Selector) Selected() (int, bool) {
	s.refresh()
	if s.selected < 0 {
		return 0, false
	}
	for pos, i := range s.view {
		if i == s.selected {
			return pos, true
		}
	}
	return 0, false
}

// MoveSelection moves the highlight by delta rows, clamped to the view.
func (s *Selector) MoveSelection(delta int) {
	if s.done {
		return
	}
	s.refresh()
	if len(s.view) == 0 {
		return
	}
	pos, ok := s.Selected()
	if !ok {
		pos = 0
	}
	s.selected = s.view[clamp(pos+delta, 0, len(s.view)-1)]
}

// Confirm finishes the session with the highlighted candidate's label.
func (s *Selector) Confirm() (string, error) {
	if s.cancelled {
		return "", ErrNoSelection
	}
	s.refresh()
	if s.selected < 0 {
		return "", ErrNoSelection
	}
	s.done = true
	return s.candidates[s.selected], nil
}

func (s *Selector) Cancel() {
	s.done = true
	s.cancelled = true
	s.selected = -1
}

func (s *Selector) Cancelled() bool {
	return s.cancelled
}

func (s *Selector) Done() bool {
	return s.done
}

func (s *Selector) refresh() {
	if !s.stale {
		return
	}
	s.stale = false
	s.view = s.matcher.Match(s.query, s.candidates)

	if s.cancelled {
		return
	}
	for _, i := range s.view {
		if i == s.selected {
			return
		}
	}
	s.selected = -1
	if len(s.view) > 0 {
		s.selected = s.view[0]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
