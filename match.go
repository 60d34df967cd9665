package fuzzyac

import (
	"math"
	"sort"

	"github.com/coregx/fuzzyac/internal/pattern"
)

// Pattern is the immutable dictionary entry a FuzzyMatch was found against
// (spec.md §3). It is an alias of the internal record so callers can read
// pattern fields without this module exposing internal/pattern directly.
type Pattern = pattern.Pattern

// FuzzyMatch is one approximate occurrence of a pattern inside a haystack
// (spec.md §3).
type FuzzyMatch struct {
	PatternIndex int
	Pattern      Pattern
	// Start and End are byte offsets into the haystack, start inclusive,
	// end exclusive.
	Start, End int
	// Text equals haystack[Start:End].
	Text       string
	Similarity float64

	Insertions    int
	Deletions     int
	Substitutions int
	Swaps         int
}

// Edits returns the total edit count spent to reach this match.
func (m FuzzyMatch) Edits() int {
	return m.Insertions + m.Deletions + m.Substitutions + m.Swaps
}

// FuzzyMatches is an ordered list of FuzzyMatch sharing one haystack
// (spec.md §3). Selector operations below mutate it in place.
type FuzzyMatches struct {
	haystack string
	inner    []FuzzyMatch
}

// Haystack returns the text every match in this list was found against.
func (fm *FuzzyMatches) Haystack() string {
	return fm.haystack
}

// Len returns the number of matches.
func (fm *FuzzyMatches) Len() int {
	return len(fm.inner)
}

// All returns the matches in current order. The returned slice must not be
// mutated by callers.
func (fm *FuzzyMatches) All() []FuzzyMatch {
	return fm.inner
}

// At returns the match at index i.
func (fm *FuzzyMatches) At(i int) FuzzyMatch {
	return fm.inner[i]
}

// compareFloat64 totally orders float64 values, treating NaN as less than
// every non-NaN value and equal to itself, so sort stages never panic or
// behave inconsistently on a stray NaN (spec.md §7).
func compareFloat64(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DefaultSort orders matches by descending similarity, then descending
// pattern byte length, then descending matched text byte length, then
// ascending start (spec.md §4.4).
func (fm *FuzzyMatches) DefaultSort() {
	sort.SliceStable(fm.inner, func(i, j int) bool {
		a, b := fm.inner[i], fm.inner[j]
		if c := compareFloat64(a.Similarity, b.Similarity); c != 0 {
			return c > 0
		}
		if la, lb := len(a.Pattern.Text), len(b.Pattern.Text); la != lb {
			return la > lb
		}
		if la, lb := len(a.Text), len(b.Text); la != lb {
			return la > lb
		}
		return a.Start < b.Start
	})
}

// GreedySort orders matches by descending pattern byte length, then
// descending similarity, then ascending start (spec.md §4.4).
func (fm *FuzzyMatches) GreedySort() {
	sort.SliceStable(fm.inner, func(i, j int) bool {
		a, b := fm.inner[i], fm.inner[j]
		if la, lb := len(a.Pattern.Text), len(b.Pattern.Text); la != lb {
			return la > lb
		}
		if c := compareFloat64(a.Similarity, b.Similarity); c != 0 {
			return c > 0
		}
		return a.Start < b.Start
	})
}

// CoverageWeightedSort orders matches by descending similarity^2 * pattern
// byte length, then descending similarity, then ascending start (spec.md
// §4.4).
func (fm *FuzzyMatches) CoverageWeightedSort() {
	coverage := func(m FuzzyMatch) float64 {
		return m.Similarity * m.Similarity * float64(len(m.Pattern.Text))
	}
	sort.SliceStable(fm.inner, func(i, j int) bool {
		a, b := fm.inner[i], fm.inner[j]
		if c := compareFloat64(coverage(a), coverage(b)); c != 0 {
			return c > 0
		}
		if c := compareFloat64(a.Similarity, b.Similarity); c != 0 {
			return c > 0
		}
		return a.Start < b.Start
	})
}

// interval is one occupied [start, end) span recorded by NonOverlapping.
type interval struct {
	start, end int
}

// overlapsAny reports whether [start, end) strictly overlaps any interval
// already kept. Touching at an endpoint is permitted (spec.md §4.4).
func overlapsAny(kept []interval, start, end int) bool {
	for _, iv := range kept {
		if start < iv.end && iv.start < end {
			return true
		}
	}
	return false
}

// NonOverlapping walks the list in its current order, keeping a match iff
// its span does not strictly overlap any already-kept span, then re-sorts
// survivors by ascending start (spec.md §4.4). Callers choose which
// matches win contested spans by sorting first (DefaultSort, GreedySort,
// CoverageWeightedSort, or a custom order).
func (fm *FuzzyMatches) NonOverlapping() {
	kept := make([]interval, 0, len(fm.inner))
	out := make([]FuzzyMatch, 0, len(fm.inner))
	for _, m := range fm.inner {
		if overlapsAny(kept, m.Start, m.End) {
			continue
		}
		kept = append(kept, interval{start: m.Start, end: m.End})
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	fm.inner = out
}

// identity returns the value non_overlapping_unique dedupes on: the
// pattern's UniqueID if set, else its index (spec.md §3 Pattern.unique_id).
func identity(m FuzzyMatch) int {
	return m.Pattern.Identity(m.PatternIndex)
}

// NonOverlappingUnique is NonOverlapping, additionally skipping any match
// whose identity (custom unique_id, else pattern index) has already been
// kept (spec.md §4.4).
func (fm *FuzzyMatches) NonOverlappingUnique() {
	kept := make([]interval, 0, len(fm.inner))
	seen := make(map[int]bool, len(fm.inner))
	out := make([]FuzzyMatch, 0, len(fm.inner))
	for _, m := range fm.inner {
		id := identity(m)
		if seen[id] {
			continue
		}
		if overlapsAny(kept, m.Start, m.End) {
			continue
		}
		kept = append(kept, interval{start: m.Start, end: m.End})
		seen[id] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	fm.inner = out
}
