package grapheme

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// eAcute is "e" followed by a combining acute accent (U+0301): two scalar
// values forming one extended grapheme cluster. The literal below holds
// the decomposed form (bytes 65 CC 81), not the precomposed U+00E9.
const eAcute = "é"

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{name: "empty", s: "", want: nil},
		{name: "ascii", s: "cat", want: []string{"c", "a", "t"}},
		{name: "combining accent", s: eAcute + "cole", want: []string{eAcute, "c", "o", "l", "e"}},
		// thumbs-up + light skin tone modifier forms one grapheme cluster.
		{name: "emoji with modifier", s: "a\U0001F44D\U0001F3FB", want: []string{"a", "\U0001F44D\U0001F3FB"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.s)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Segments(%q) = %v, want nil", tt.s, got)
				}
				return
			}
			var texts []string
			for _, g := range got {
				texts = append(texts, g.Text)
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("Segments(%q) texts = %v, want %v", tt.s, texts, tt.want)
			}
		})
	}
}

func TestSegmentsByteSpans(t *testing.T) {
	s := eAcute + "b"
	got := Segments(s)
	if len(got) != 2 {
		t.Fatalf("Segments(%q) len = %d, want 2", s, len(got))
	}
	firstLen := len(eAcute)
	if got[0].Start != 0 || got[0].End != firstLen {
		t.Errorf("first grapheme span = [%d,%d), want [0,%d)", got[0].Start, got[0].End, firstLen)
	}
	if got[1].Start != firstLen || got[1].End != len(s) {
		t.Errorf("second grapheme span = [%d,%d), want [%d,%d)", got[1].Start, got[1].End, firstLen, len(s))
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{name: "empty", s: "", want: 0},
		{name: "ascii", s: "hello", want: 5},
		{name: "combining accent", s: eAcute + "cole", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.s); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{name: "already lower", s: "abc", want: "abc"},
		{name: "uppercase ascii", s: "ABC", want: "abc"},
		{name: "german sharp s", s: "straße", want: "strasse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.s); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestFirstRune(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want rune
	}{
		{name: "ascii", s: "cat", want: 'c'},
		{name: "empty", s: "", want: utf8.RuneError},
		{name: "multi-codepoint grapheme", s: eAcute, want: 'e'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstRune(tt.s); got != tt.want {
				t.Errorf("FirstRune(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

