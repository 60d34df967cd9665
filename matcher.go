package fuzzyac

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/fuzzyac/internal/automaton"
	"github.com/coregx/fuzzyac/internal/kernel"
	"github.com/coregx/fuzzyac/internal/pattern"
)

// Matcher is an immutable, built fuzzy multi-pattern matcher (spec.md §3
// "Lifecycle"). It holds no mutable state and is safe for concurrent
// searches over disjoint haystacks from multiple goroutines (spec.md §5).
type Matcher struct {
	table           *pattern.Table
	automaton       *automaton.Automaton
	caseInsensitive bool
	globalLimits    *EditLimits
	penalties       EditPenalties
	similarity      *SimilarityTable
	beamWidth       int

	// exact is non-nil when every pattern's governing limits force zero
	// edits (table.ExactOnly) and the matcher is not case-insensitive (see
	// buildExactAutomaton). When set, searches bypass the BFS kernel
	// entirely in favor of this Aho-Corasick automaton, mirroring the
	// teacher's own literal-alternation bypass (meta.Engine.ahoCorasick).
	exact *ahocorasick.Automaton
}

// buildExactAutomaton compiles a github.com/coregx/ahocorasick automaton
// over the pattern set's raw byte forms. Case-insensitive matchers never
// reach here (see Builder.Build): full Unicode case folding can change a
// grapheme's byte length, which would desynchronize the automaton's byte
// offsets from the original haystack's, and re-deriving them would cost
// more than the fast path saves. The fuzzy BFS kernel already folds
// correctly because it compares whole graphemes, not bytes.
func buildExactAutomaton(table *pattern.Table) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, p := range table.All() {
		builder.AddPattern([]byte(p.Text))
	}
	exact, err := builder.Build()
	if err != nil {
		return nil
	}
	return exact
}

// SearchUnsorted runs the matcher over haystack, returning every
// distinct (span, pattern) match whose similarity is at least threshold,
// in unspecified order (spec.md §6).
func (m *Matcher) SearchUnsorted(haystack string, threshold float64) *FuzzyMatches {
	if m.exact != nil {
		return m.searchExact(haystack, threshold)
	}
	return m.searchFuzzy(haystack, threshold)
}

// Search is SearchUnsorted followed by DefaultSort (spec.md §6).
func (m *Matcher) Search(haystack string, threshold float64) *FuzzyMatches {
	r := m.SearchUnsorted(haystack, threshold)
	r.DefaultSort()
	return r
}

// SearchNonOverlapping is Search followed by NonOverlapping (spec.md §6).
func (m *Matcher) SearchNonOverlapping(haystack string, threshold float64) *FuzzyMatches {
	r := m.Search(haystack, threshold)
	r.NonOverlapping()
	return r
}

// SearchNonOverlappingUnique is Search followed by NonOverlappingUnique
// (spec.md §6).
func (m *Matcher) SearchNonOverlappingUnique(haystack string, threshold float64) *FuzzyMatches {
	r := m.Search(haystack, threshold)
	r.NonOverlappingUnique()
	return r
}

func (m *Matcher) searchFuzzy(haystack string, threshold float64) *FuzzyMatches {
	cfg := kernel.Config{
		Penalties:       m.penalties,
		Similarity:      m.similarity,
		CaseInsensitive: m.caseInsensitive,
		GlobalLimits:    m.globalLimits,
		BeamWidth:       m.beamWidth,
	}
	raw := kernel.Search(m.automaton, m.table, haystack, threshold, cfg)

	out := make([]FuzzyMatch, 0, len(raw))
	for _, r := range raw {
		out = append(out, FuzzyMatch{
			PatternIndex:  r.PatternIndex,
			Pattern:       m.table.Get(r.PatternIndex),
			Start:         r.Start,
			End:           r.End,
			Text:          haystack[r.Start:r.End],
			Similarity:    r.Similarity,
			Insertions:    r.Insertions,
			Deletions:     r.Deletions,
			Substitutions: r.Substitutions,
			Swaps:         r.Swaps,
		})
	}
	return &FuzzyMatches{haystack: haystack, inner: out}
}

// searchExact enumerates every occurrence of every pattern via the
// compiled Aho-Corasick automaton. Find reports only the single leftmost
// match from a given offset (same as the teacher's own usage in
// meta/find.go), so at each reported start every pattern is checked for
// an occurrence there, and the scan then advances past that start so
// overlapping occurrences at later starts are found too.
func (m *Matcher) searchExact(haystack string, threshold float64) *FuzzyMatches {
	hb := []byte(haystack)
	var out []FuzzyMatch

	at := 0
	for at <= len(hb) {
		match := m.exact.Find(hb, at)
		if match == nil {
			break
		}
		for idx, p := range m.table.All() {
			if !strings.HasPrefix(haystack[match.Start:], p.Text) {
				continue
			}
			similarity := p.Weight
			if similarity >= threshold {
				end := match.Start + len(p.Text)
				out = append(out, FuzzyMatch{
					PatternIndex: idx,
					Pattern:      p,
					Start:        match.Start,
					End:          end,
					Text:         haystack[match.Start:end],
					Similarity:   similarity,
				})
			}
		}
		next := match.Start + 1
		if next <= at {
			next = at + 1
		}
		at = next
	}

	return &FuzzyMatches{haystack: haystack, inner: out}
}
