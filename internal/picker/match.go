package picker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchFuzzy     MatchMode = "fuzzy"
)

// Matcher returns the indices of candidates matching query, in candidate order.
type Matcher interface {
	Match(query string, candidates []string) []int
}

func ParseMatchMode(value string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	default:
		return "", fmt.Errorf("unknown match mode: %q (want substring or fuzzy)", value)
	}
}

func MatcherFor(mode MatchMode) Matcher {
	if mode == MatchFuzzy {
		return FuzzyMatcher{}
	}
	return SubstringMatcher{}
}

// SubstringMatcher matches candidates containing the query, ignoring case.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(query string, candidates []string) []int {
	indices := make([]int, 0, len(candidates))
	if query == "" {
		for i := range candidates {
			indices = append(indices, i)
		}
		return indices
	}

	needle := strings.ToLower(query)
	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}

// FuzzyMatcher matches candidates containing the query's characters in order,
// not necessarily adjacent.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(query string, candidates []string) []int {
	if query == "" {
		return SubstringMatcher{}.Match(query, candidates)
	}

	matches := fuzzy.FindFromNoSort(query, stringSource(candidates))
	indices := make([]int, 0, len(matches))
	for _, match := range matches {
		indices = append(indices, match.Index)
	}
	sort.Ints(indices)
	return indices
}

type stringSource []string

func (s stringSource) Len() int {
	return len(s)
}

func (s stringSource) String(i int) string {
	return s[i]
}
