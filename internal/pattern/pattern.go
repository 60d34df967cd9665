// Package pattern implements the Pattern Table of spec.md §3: an
// immutable, ordered dictionary of patterns with O(1) lookup by index.
package pattern

import "github.com/coregx/fuzzyac/internal/grapheme"

// Pattern is an immutable dictionary entry (spec.md §3).
type Pattern struct {
	// Text is the original pattern text, used for reporting.
	Text string
	// Graphemes is Text split into extended grapheme clusters; each keeps
	// its original text alongside its case-folded form, and the automaton
	// picks which one to match on.
	Graphemes []grapheme.Grapheme
	// Weight scales reported similarity; real in (0,1], default 1.0.
	Weight float64
	// Limits overrides the Table's global limits when non-nil.
	Limits *EditLimits
	// UniqueID identifies this pattern for uniqueness selection when
	// non-nil; otherwise the pattern's index in the Table is used.
	UniqueID *int
}

// GraphemeLen returns the number of graphemes in the pattern.
func (p Pattern) GraphemeLen() int {
	return len(p.Graphemes)
}

// Identity returns the value non_overlapping_unique uses to dedupe this
// pattern: UniqueID if set, otherwise index.
func (p Pattern) Identity(index int) int {
	if p.UniqueID != nil {
		return *p.UniqueID
	}
	return index
}

// Table is the ordered, immutable dictionary built by the Builder. Index
// i in the underlying slice is pattern i's identity for automaton output
// lists and FuzzyMatch.PatternIndex.
type Table struct {
	patterns []Pattern
}

// NewTable freezes patterns into a Table. globalLimits, when non-nil, is
// finalized once here; each pattern's own Limits (if any) is finalized
// independently so per-pattern overrides obey spec.md §9(c) too.
func NewTable(patterns []Pattern, globalLimits *EditLimits) *Table {
	globalLimits.finalize()
	for i := range patterns {
		patterns[i].Limits.finalize()
	}
	return &Table{patterns: patterns}
}

// Len returns the number of patterns.
func (t *Table) Len() int {
	return len(t.patterns)
}

// Get returns pattern i. Panics on out-of-range i; callers only ever
// index with values produced by the automaton's own output lists.
func (t *Table) Get(i int) Pattern {
	return t.patterns[i]
}

// All returns the patterns in order. The returned slice must not be
// mutated by callers.
func (t *Table) All() []Pattern {
	return t.patterns
}

// EffectiveLimits resolves the governing EditLimits for pattern i: its
// own Limits if set, otherwise globalLimits.
func (t *Table) EffectiveLimits(i int, globalLimits *EditLimits) *EditLimits {
	if t.patterns[i].Limits != nil {
		return t.patterns[i].Limits
	}
	return globalLimits
}

// ExactOnly reports whether every pattern in the table, under
// globalLimits, can only ever match exactly. Used by the Matcher to
// decide whether the whole search can be dispatched to the exact
// Aho-Corasick fast path instead of the fuzzy BFS kernel.
func (t *Table) ExactOnly(globalLimits *EditLimits) bool {
	for i := range t.patterns {
		if !t.EffectiveLimits(i, globalLimits).ExactOnly() {
			return false
		}
	}
	return true
}

// MaxGraphemeLen returns the longest pattern's grapheme length, used by
// the kernel's threshold pruning (spec.md §4.3, L_max).
func (t *Table) MaxGraphemeLen() int {
	max := 0
	for _, p := range t.patterns {
		if n := p.GraphemeLen(); n > max {
			max = n
		}
	}
	return max
}
