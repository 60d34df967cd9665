package fuzzyac

import "strings"

// SegmentKind distinguishes the two kinds of Segment.
type SegmentKind int

const (
	SegmentUnmatched SegmentKind = iota
	SegmentMatched
)

// Segment is one piece of a haystack as partitioned by a non-overlapping
// search: either a FuzzyMatch span or the unmatched text between two
// matches (or before the first / after the last). Grounded on
// original_source/src/structs.rs's Segment/UnmatchedSegment enum.
type Segment struct {
	Kind SegmentKind
	// Match is populated iff Kind == SegmentMatched.
	Match      FuzzyMatch
	Text       string
	Start, End int
}

// segments partitions haystack into an alternating Unmatched/Matched/...
// sequence covering it entirely, driven by SearchNonOverlapping. This
// generalizes original_source/src/segment.rs's segment_iter, which drove
// the same partition off a plain sort-by-start dedup; using
// SearchNonOverlapping instead means overlap ties resolve by similarity
// (DefaultSort's ranking) rather than by whichever match happened to sort
// first, which better matches spec.md's "highest-similarity-wins" framing
// of non_overlapping (spec.md §4.4).
func (m *Matcher) segments(haystack string, threshold float64) []Segment {
	matches := m.SearchNonOverlapping(haystack, threshold)

	segs := make([]Segment, 0, matches.Len()*2+1)
	last := 0
	for _, mt := range matches.All() {
		if mt.Start > last {
			segs = append(segs, Segment{Kind: SegmentUnmatched, Text: haystack[last:mt.Start], Start: last, End: mt.Start})
		}
		segs = append(segs, Segment{Kind: SegmentMatched, Match: mt, Text: mt.Text, Start: mt.Start, End: mt.End})
		last = mt.End
	}
	if last < len(haystack) {
		segs = append(segs, Segment{Kind: SegmentUnmatched, Text: haystack[last:], Start: last, End: len(haystack)})
	}
	return segs
}

// SegmentIter returns haystack's full Matched/Unmatched partition at the
// given threshold.
func (m *Matcher) SegmentIter(haystack string, threshold float64) []Segment {
	return m.segments(haystack, threshold)
}

// SegmentText joins the Matched/Unmatched partition back into a single
// whitespace-normalized string: each Unmatched run has its leading and
// trailing whitespace trimmed, and a separator space is inserted whenever
// the previous segment was Matched, so a match is never reported fused to
// the non-matched letters that follow it. A separator is not inserted
// after an Unmatched segment, matching original_source/src/segment.rs's
// segment_text exactly (a match can end up directly butted against the
// trimmed remainder of the Unmatched run that preceded it).
func (m *Matcher) SegmentText(haystack string, threshold float64) string {
	var b strings.Builder
	prevMatched := false
	for _, s := range m.segments(haystack, threshold) {
		if s.Kind == SegmentMatched {
			if prevMatched {
				b.WriteByte(' ')
			}
			prevMatched = true
			b.WriteString(s.Text)
			continue
		}
		if prevMatched {
			b.WriteByte(' ')
		}
		prevMatched = false
		b.WriteString(strings.TrimSpace(s.Text))
	}
	return b.String()
}
