// Package fuzzyac implements a fuzzy multi-pattern matcher over Unicode
// text: given a fixed dictionary of patterns, it finds approximate
// occurrences of any pattern inside a haystack, tolerating insertions,
// deletions, substitutions and adjacent transpositions of graphemes under
// a configurable edit-penalty model.
//
// Build a Matcher with Builder, then search with Matcher's Search family:
//
//	m, err := fuzzyac.NewBuilder().
//	    AddPattern("saddam").
//	    AddPattern("hussein").
//	    GlobalLimits(fuzzyac.NewEditLimits().Edits(2)).
//	    Build()
//	matches := m.Search("saddamhussein", 0.5)
package fuzzyac

import (
	"github.com/coregx/fuzzyac/internal/automaton"
	"github.com/coregx/fuzzyac/internal/editcost"
	"github.com/coregx/fuzzyac/internal/grapheme"
	"github.com/coregx/fuzzyac/internal/pattern"
)

// EditLimits bounds the edits a candidate match may spend (spec.md §3).
// Construct with NewEditLimits and configure via its chained setters.
type EditLimits = pattern.EditLimits

// NewEditLimits returns an EditLimits with every bound unset, meaning
// only exact matches are accepted until a bound is set.
func NewEditLimits() *EditLimits {
	return pattern.NewEditLimits()
}

// EditPenalties holds the four per-edit costs (spec.md §3).
type EditPenalties = editcost.Penalties

// DefaultEditPenalties returns substitution 1.0, deletion 0.7, insertion
// 0.4, swap 0.4, per spec.md §3.
func DefaultEditPenalties() EditPenalties {
	return editcost.DefaultPenalties()
}

// SimilarityTable maps grapheme pairs to a similarity score in [0,1]
// (spec.md §3). Identity pairs are implicit and always score 1.0.
type SimilarityTable = editcost.SimilarityTable

// NewSimilarityTable returns an empty table: every non-identical pair
// scores 0.0 until populated with Set.
func NewSimilarityTable() *SimilarityTable {
	return editcost.NewSimilarityTable()
}

// DefaultSimilarityTable returns the illustrative defaults of spec.md §3:
// vowel/vowel 0.8, consonant/consonant 0.6, 'o'/'0' 0.8.
func DefaultSimilarityTable() *SimilarityTable {
	return editcost.DefaultSimilarityTable()
}

// PatternOptions configures one pattern beyond its text, for
// Builder.AddPatternWithOptions.
type PatternOptions struct {
	// Weight scales reported similarity; real in (0,1], default 1.0.
	Weight *float64
	// Limits overrides the Builder's GlobalLimits for this pattern alone.
	Limits *EditLimits
	// UniqueID identifies this pattern for NonOverlappingUnique; when nil
	// the pattern's index is used.
	UniqueID *int
}

// Builder assembles a Matcher (spec.md §6 "Builder collaborator
// interface"): a mutable configuration surface, validated and frozen by
// Build into an immutable Matcher. Mirrors the teacher's meta.Config /
// Config.Validate pattern, generalized to a chained-setter builder since
// fuzzyac's configuration is assembled incrementally (one AddPattern call
// per dictionary entry) rather than constructed as a single struct
// literal.
type Builder struct {
	patterns        []pattern.Pattern
	caseInsensitive bool
	globalLimits    *EditLimits
	penalties       EditPenalties
	similarity      *SimilarityTable
	beamWidth       *int
}

// NewBuilder returns a Builder with default penalties and similarity
// table and no patterns.
func NewBuilder() *Builder {
	return &Builder{
		penalties:  DefaultEditPenalties(),
		similarity: DefaultSimilarityTable(),
	}
}

// CaseInsensitive sets whether patterns and haystack graphemes are
// compared via Unicode full case-folding (spec.md §9).
func (b *Builder) CaseInsensitive(v bool) *Builder {
	b.caseInsensitive = v
	return b
}

// GlobalLimits sets the edit limits applied to every pattern that does
// not set its own via PatternOptions.Limits.
func (b *Builder) GlobalLimits(limits *EditLimits) *Builder {
	b.globalLimits = limits
	return b
}

// Penalties overrides the default edit-cost model.
func (b *Builder) Penalties(p EditPenalties) *Builder {
	b.penalties = p
	return b
}

// SimilarityTable overrides the default grapheme-pair similarity table.
// The table must outlive the built Matcher (spec.md §9).
func (b *Builder) SimilarityTable(t *SimilarityTable) *Builder {
	b.similarity = t
	return b
}

// BeamWidth configures the optional beam truncation bound (spec.md
// §4.3). w must be positive; Build rejects w == 0 as a misconfiguration
// rather than silently disabling beaming, since a caller who explicitly
// asked for beam(0) almost certainly meant something else.
func (b *Builder) BeamWidth(w int) *Builder {
	b.beamWidth = &w
	return b
}

// AddPattern appends a pattern with default weight, no per-pattern
// limits override, and no unique id.
func (b *Builder) AddPattern(text string) *Builder {
	return b.AddPatternWithOptions(text, PatternOptions{})
}

// AddPatternWithOptions appends a pattern with explicit options.
func (b *Builder) AddPatternWithOptions(text string, opts PatternOptions) *Builder {
	weight := 1.0
	if opts.Weight != nil {
		weight = *opts.Weight
	}
	b.patterns = append(b.patterns, pattern.Pattern{
		Text:      text,
		Graphemes: grapheme.Segments(text),
		Weight:    weight,
		Limits:    opts.Limits,
		UniqueID:  opts.UniqueID,
	})
	return b
}

// Build validates the accumulated configuration and compiles the
// automaton, returning an immutable Matcher. Per spec.md §7, the only
// error class is builder-time misconfiguration: an empty pattern list, a
// pattern with zero graphemes, a weight outside (0,1], a negative
// penalty, a beam width of zero, or a similarity value outside [0,1].
func (b *Builder) Build() (*Matcher, error) {
	if len(b.patterns) == 0 {
		return nil, &ConfigError{Field: "patterns", Message: "at least one pattern is required"}
	}
	for i, p := range b.patterns {
		if p.GraphemeLen() == 0 {
			return nil, &PatternError{Index: i, Pattern: p.Text, Message: "pattern has zero graphemes"}
		}
		if p.Weight <= 0 || p.Weight > 1 {
			return nil, &PatternError{Index: i, Pattern: p.Text, Message: "weight must be in (0,1]"}
		}
	}
	if err := b.penalties.Validate(); err != nil {
		return nil, err
	}
	if err := b.similarity.Validate(); err != nil {
		return nil, err
	}
	if err := b.globalLimits.Validate(); err != nil {
		return nil, err
	}
	for i, p := range b.patterns {
		if err := p.Limits.Validate(); err != nil {
			return nil, &PatternError{Index: i, Pattern: p.Text, Message: err.Error()}
		}
	}
	if b.beamWidth != nil && *b.beamWidth <= 0 {
		return nil, &ConfigError{Field: "BeamWidth", Message: "must be positive"}
	}

	table := pattern.NewTable(b.patterns, b.globalLimits)

	aut, err := automaton.Build(table.All(), b.caseInsensitive)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		table:           table,
		automaton:       aut,
		caseInsensitive: b.caseInsensitive,
		globalLimits:    b.globalLimits,
		penalties:       b.penalties,
		similarity:      b.similarity,
	}
	if b.beamWidth != nil {
		m.beamWidth = *b.beamWidth
	}

	if !b.caseInsensitive && table.ExactOnly(b.globalLimits) {
		m.exact = buildExactAutomaton(table)
	}

	return m, nil
}
