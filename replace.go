package fuzzyac

import "strings"

// Replace runs SearchNonOverlapping over haystack and rewrites it,
// splicing fn's return value in place of each retained match's span. If
// fn returns "", the original matched text for that span is kept as-is.
// Grounded on original_source/src/replacer.rs's FuzzyReplacer::replace
// and the underlying FuzzyMatches::replace it wraps.
func (m *Matcher) Replace(haystack string, threshold float64, fn func(FuzzyMatch) string) string {
	matches := m.SearchNonOverlapping(haystack, threshold)

	var b strings.Builder
	last := 0
	for _, mt := range matches.All() {
		b.WriteString(haystack[last:mt.Start])
		replacement := fn(mt)
		if replacement == "" {
			replacement = mt.Text
		}
		b.WriteString(replacement)
		last = mt.End
	}
	b.WriteString(haystack[last:])
	return b.String()
}
