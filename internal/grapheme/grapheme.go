// Package grapheme segments Unicode text into extended grapheme clusters
// (UAX #29) and provides the case-insensitive folding used throughout
// fuzzyac. "Character position" everywhere else in this module means
// "grapheme index" into the slice this package produces; byte offsets are
// carried alongside so callers can report spans back into the original
// text.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// foldCaser is a package-level Unicode case folder, built once and reused
// across every Segment/Fold call.
var foldCaser = cases.Fold()

// Grapheme is a single extended grapheme cluster positioned within its
// source string.
type Grapheme struct {
	// Text is the cluster's original text, unmodified.
	Text string
	// Folded is Text passed through Unicode case folding. Equal to Text
	// when the cluster has no case mapping.
	Folded string
	// Start and End are the byte offsets of Text within the source string
	// (Start inclusive, End exclusive).
	Start int
	End   int
}

// Segments splits s into extended grapheme clusters in order, recording
// each cluster's byte span in the original string.
func Segments(s string) []Grapheme {
	if s == "" {
		return nil
	}
	out := make([]Grapheme, 0, len(s))
	state := -1
	pos := 0
	remaining := s
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		state = newState
		start := pos
		end := pos + len(cluster)
		out = append(out, Grapheme{
			Text:   cluster,
			Folded: Fold(cluster),
			Start:  start,
			End:    end,
		})
		pos = end
		remaining = rest
	}
	return out
}

// Count returns the number of extended grapheme clusters in s without
// allocating a slice of them.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Fold applies full Unicode case folding to a single grapheme cluster (or
// any string), matching spec.md's "case-insensitivity ... using Unicode's
// full case-folding".
func Fold(s string) string {
	return foldCaser.String(s)
}

// FirstRune returns the first scalar code point of a grapheme cluster's
// text, or utf8.RuneError if the cluster is empty. The similarity table
// is keyed on single runes (spec.md §4.2: "table lookup uses the first
// scalar code point of each grapheme"), so multi-codepoint clusters (e.g.
// an emoji with a modifier) are reduced to their leading rune for that
// lookup only; exact-match comparison always uses the full cluster text.
func FirstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
