package pattern

import (
	"testing"

	"github.com/coregx/fuzzyac/internal/grapheme"
)

func newPattern(text string, weight float64) Pattern {
	return Pattern{
		Text:      text,
		Graphemes: grapheme.Segments(text),
		Weight:    weight,
	}
}

func TestPatternGraphemeLenAndIdentity(t *testing.T) {
	p := newPattern("cat", 1.0)
	if got := p.GraphemeLen(); got != 3 {
		t.Errorf("GraphemeLen() = %d, want 3", got)
	}
	if got := p.Identity(5); got != 5 {
		t.Errorf("Identity(5) with no UniqueID = %d, want 5", got)
	}

	id := 42
	p.UniqueID = &id
	if got := p.Identity(5); got != 42 {
		t.Errorf("Identity(5) with UniqueID=42 = %d, want 42", got)
	}
}

func TestTableBasics(t *testing.T) {
	patterns := []Pattern{newPattern("cat", 1.0), newPattern("dog", 0.5)}
	table := NewTable(patterns, nil)

	if got := table.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := table.Get(0).Text; got != "cat" {
		t.Errorf("Get(0).Text = %q, want cat", got)
	}
	if got := table.Get(1).Text; got != "dog" {
		t.Errorf("Get(1).Text = %q, want dog", got)
	}
	if got := len(table.All()); got != 2 {
		t.Errorf("len(All()) = %d, want 2", got)
	}
}

func TestTableMaxGraphemeLen(t *testing.T) {
	tests := []struct {
		name     string
		patterns []Pattern
		want     int
	}{
		{name: "empty table", patterns: nil, want: 0},
		{name: "single pattern", patterns: []Pattern{newPattern("cat", 1.0)}, want: 3},
		{
			name:     "longest wins",
			patterns: []Pattern{newPattern("cat", 1.0), newPattern("elephant", 1.0)},
			want:     8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.patterns, nil)
			if got := table.MaxGraphemeLen(); got != tt.want {
				t.Errorf("MaxGraphemeLen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTableEffectiveLimits(t *testing.T) {
	global := NewEditLimits().Edits(2)
	perPattern := NewEditLimits().Edits(0)

	patterns := []Pattern{newPattern("cat", 1.0), newPattern("dog", 1.0)}
	patterns[1].Limits = perPattern
	table := NewTable(patterns, global)

	if got := table.EffectiveLimits(0, global); got != global {
		t.Errorf("EffectiveLimits(0) did not fall back to global limits")
	}
	if got := table.EffectiveLimits(1, global); got != perPattern {
		t.Errorf("EffectiveLimits(1) did not use the pattern's own override")
	}
}

func TestTableExactOnly(t *testing.T) {
	tests := []struct {
		name     string
		global   *EditLimits
		override *EditLimits
		want     bool
	}{
		{name: "nil global is exact", global: nil, want: true},
		{name: "global permits edits", global: NewEditLimits().Edits(2), want: false},
		{
			name:     "override forces exact despite permissive global",
			global:   NewEditLimits().Edits(2),
			override: NewEditLimits().Edits(0),
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := []Pattern{newPattern("cat", 1.0)}
			if tt.override != nil {
				patterns[0].Limits = tt.override
			}
			table := NewTable(patterns, tt.global)
			if got := table.ExactOnly(tt.global); got != tt.want {
				t.Errorf("ExactOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}
