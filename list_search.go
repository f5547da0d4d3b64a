package listkit

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// Matcher selects the labels that match a query. It returns positions into
// labels in ascending order.
type Matcher interface {
	Match(query string, labels []string) []int
}

// SubstringMatcher matches labels containing the query, ignoring case.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(query string, labels []string) []int {
	q := strings.ToLower(query)
	var out []int
	for i, l := range labels {
		if strings.Contains(strings.ToLower(l), q) {
			out = append(out, i)
		}
	}
	return out
}

// FuzzyMatcher matches labels containing the query characters in order,
// as in "lvl3" matching "Level 3". Results keep collection order.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(query string, labels []string) []int {
	matches := fuzzy.Find(query, labels)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	slices.Sort(out)
	return out
}

// TypoTolerantMatcher matches when every query word is contained in, or
// within MaxDistance edits of, some word of the label.
type TypoTolerantMatcher struct {
	MaxDistance int
}

func (m TypoTolerantMatcher) Match(query string, labels []string) []int {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}
	var out []int
	for i, l := range labels {
		if m.matchWords(words, strings.Fields(strings.ToLower(l))) {
			out = append(out, i)
		}
	}
	return out
}

func (m TypoTolerantMatcher) matchWords(query, label []string) bool {
	for _, q := range query {
		if !slices.ContainsFunc(label, func(w string) bool { return m.wordMatches(q, w) }) {
			return false
		}
	}
	return true
}

func (m TypoTolerantMatcher) wordMatches(q, w string) bool {
	if strings.Contains(w, q) {
		return true
	}
	// Short words would match almost anything.
	if utf8.RuneCountInString(q) <= m.MaxDistance {
		return false
	}
	return levenshtein.ComputeDistance(q, w) <= m.MaxDistance
}

// SetSearchQuery filters the list to elements matching q and returns to
// the first page. An empty query shows everything again.
func (lv *ListView) SetSearchQuery(q string) {
	st := &lv.state
	st.SearchQuery = q
	st.CurrentPage = 0
	lv.refilter()
	lv.requestRepaint()
}

// SearchQuery returns the current query.
func (lv *ListView) SearchQuery() string {
	return lv.state.SearchQuery
}

// IsSearchActive reports whether a non-empty query filters the list.
func (lv *ListView) IsSearchActive() bool {
	return lv.state.SearchActive
}

// refilter rescans the collection against the current query.
func (lv *ListView) refilter() {
	st := &lv.state
	st.FilteredIndices = nil
	count := lv.src.Count()
	st.filteredCount = count
	if st.SearchQuery == "" {
		st.SearchActive = false
		return
	}
	st.SearchActive = true

	if lv.predicate != nil {
		for i := range count {
			h, err := lv.src.Get(i)
			if err != nil {
				continue
			}
			if lv.predicate(h, i, st.SearchQuery) {
				st.FilteredIndices = append(st.FilteredIndices, i)
			}
		}
		return
	}

	labels := make([]string, count)
	for i := range labels {
		labels[i] = lv.ElementLabel(i)
	}
	st.FilteredIndices = append(st.FilteredIndices, lv.matcher.Match(st.SearchQuery, labels)...)
}
