package fuzzyac

// Split returns the haystack fragments between non-overlapping matches,
// discarding the matches themselves, mirroring strings.Split's shape but
// driven by fuzzy match spans rather than a literal separator.
func (m *Matcher) Split(haystack string, threshold float64) []string {
	matches := m.SearchNonOverlapping(haystack, threshold)

	out := make([]string, 0, matches.Len()+1)
	last := 0
	for _, mt := range matches.All() {
		out = append(out, haystack[last:mt.Start])
		last = mt.End
	}
	out = append(out, haystack[last:])
	return out
}
