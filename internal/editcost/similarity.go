// Package editcost implements the Edit-Cost Model: the four edit
// penalties and the grapheme-pair similarity table that discounts
// substitutions (spec.md §4.2).
package editcost

// runePair is an unordered key into a SimilarityTable: (a, b) and (b, a)
// resolve to the same entry.
type runePair struct {
	lo, hi rune
}

func newRunePair(a, b rune) runePair {
	if a > b {
		a, b = b, a
	}
	return runePair{lo: a, hi: b}
}

// SimilarityTable holds symmetric similarity scores between distinct
// graphemes, keyed by their leading rune (spec.md §4.2). Identity pairs
// are implicit and always resolve to 1.0 regardless of table contents;
// any pair absent from the table defaults to 0.0.
type SimilarityTable struct {
	scores map[runePair]float64
}

// NewSimilarityTable returns an empty table: every non-identical pair
// scores 0.0 (full substitution penalty) until populated with Set.
func NewSimilarityTable() *SimilarityTable {
	return &SimilarityTable{scores: make(map[runePair]float64)}
}

// Set records a symmetric similarity score for the pair (a, b). score
// must be in [0,1]; callers validate via Validate before the table is
// frozen into a Builder.
func (t *SimilarityTable) Set(a, b rune, score float64) {
	if a == b {
		return
	}
	t.scores[newRunePair(a, b)] = score
}

// Similarity returns the similarity of two runes: 1.0 if identical,
// the tabled value if present, otherwise 0.0.
func (t *SimilarityTable) Similarity(a, b rune) float64 {
	if a == b {
		return 1.0
	}
	if t == nil {
		return 0.0
	}
	if v, ok := t.scores[newRunePair(a, b)]; ok {
		return v
	}
	return 0.0
}

// Validate reports an error if any stored score falls outside [0,1].
func (t *SimilarityTable) Validate() error {
	if t == nil {
		return nil
	}
	for pair, score := range t.scores {
		if score < 0 || score > 1 {
			return &SimilarityError{A: pair.lo, B: pair.hi, Score: score}
		}
	}
	return nil
}

// SimilarityError reports an out-of-range entry in a SimilarityTable.
type SimilarityError struct {
	A, B  rune
	Score float64
}

func (e *SimilarityError) Error() string {
	return "fuzzyac: similarity score out of [0,1] range for pair " +
		string(e.A) + "/" + string(e.B)
}

const (
	vowelVowelDefault         = 0.8
	consonantConsonantDefault = 0.6
	zeroOhDefault             = 0.8
)

// DefaultSimilarityTable returns the illustrative default table from
// spec.md §3: vowel/vowel pairs score higher than consonant/consonant
// pairs, and the common OCR confusion 'o'/'0' is rated highly.
func DefaultSimilarityTable() *SimilarityTable {
	t := NewSimilarityTable()

	vowels := []rune("aeiouAEIOU")
	for i, a := range vowels {
		for _, b := range vowels[i+1:] {
			t.Set(a, b, vowelVowelDefault)
		}
	}

	consonants := []rune("bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ")
	for i, a := range consonants {
		for _, b := range consonants[i+1:] {
			t.Set(a, b, consonantConsonantDefault)
		}
	}

	t.Set('o', '0', zeroOhDefault)
	t.Set('O', '0', zeroOhDefault)

	return t
}
