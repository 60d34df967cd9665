package fuzzyac

import (
	"strings"
	"unicode"
)

// StripPrefix removes a leading fuzzy-matched prefix from haystack,
// returning the remainder. It skips past any initial Matched segments and
// any whitespace-only Unmatched segments, trims leading whitespace off
// the first non-whitespace Unmatched segment it finds, and then returns
// everything from there on unchanged. Grounded on
// original_source/src/matches.rs's strip_prefix.
func (m *Matcher) StripPrefix(haystack string, threshold float64) string {
	var b strings.Builder
	skipping := true

	for _, s := range m.segments(haystack, threshold) {
		if s.Kind == SegmentMatched {
			if skipping {
				continue
			}
			b.WriteString(s.Text)
			continue
		}

		if skipping {
			if strings.TrimSpace(s.Text) == "" {
				continue
			}
			skipping = false
			b.WriteString(strings.TrimLeftFunc(s.Text, unicode.IsSpace))
			continue
		}
		b.WriteString(s.Text)
	}

	return b.String()
}

// StripPostfix is StripPrefix's trailing-end counterpart: it finds the
// last Unmatched segment with non-whitespace content, trims trailing
// whitespace off it, and discards everything after it (trailing matches
// and trailing whitespace-only gaps). Grounded on
// original_source/src/matches.rs's strip_postfix.
func (m *Matcher) StripPostfix(haystack string, threshold float64) string {
	segs := m.segments(haystack, threshold)

	keep := 0
	for i, s := range segs {
		if s.Kind == SegmentUnmatched && strings.TrimSpace(s.Text) != "" {
			keep = i + 1
		}
	}

	var b strings.Builder
	for i := 0; i < keep; i++ {
		s := segs[i]
		if s.Kind == SegmentMatched {
			b.WriteString(s.Text)
			continue
		}
		if i+1 == keep {
			b.WriteString(strings.TrimRightFunc(s.Text, unicode.IsSpace))
		} else {
			b.WriteString(s.Text)
		}
	}

	return b.String()
}
