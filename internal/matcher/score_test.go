package matcher

import (
	"testing"

	"subber/internal/matchkey"
)

func TestScoreIdenticalKeys(t *testing.T) {
	s := Scorer{}
	if got := s.Score("show s01e01", "show s01e01"); got != 1.0 {
		t.Errorf("Score(identical) = %v, want 1.0", got)
	}
}

func TestScoreEmptyKeys(t *testing.T) {
	s := Scorer{DateBoost: DefaultDateBoost}
	tests := []struct {
		a, b string
	}{
		{"", ""},
		{"", "show"},
		{"show", ""},
	}
	for _, tt := range tests {
		if got := s.Score(tt.a, tt.b); got != 0 {
			t.Errorf("Score(%q, %q) = %v, want 0", tt.a, tt.b, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	s := Scorer{DateBoost: DefaultDateBoost}
	pairs := [][2]string{
		{"show s01e01", "show s01e01 alt"},
		{"a", "completely different title"},
		{"video 2024 01 24", "other 2024 01 24"},
		{"x", "y"},
	}
	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestScoreSymmetric(t *testing.T) {
	s := Scorer{DateBoost: DefaultDateBoost}
	a, b := "show s01e01 final", "show s01e01"
	if s.Score(a, b) != s.Score(b, a) {
		t.Errorf("Score not symmetric for %q / %q", a, b)
	}
}

func TestScoreMonotoneInOverlap(t *testing.T) {
	s := Scorer{}
	closeScore := s.Score("the big movie 2024", "the big movie")
	farScore := s.Score("the big movie 2024", "unrelated clip")
	if closeScore <= farScore {
		t.Errorf("overlapping pair scored %v, disjoint pair %v; want overlap higher", closeScore, farScore)
	}
}

func TestScoreDateBoost(t *testing.T) {
	base := Scorer{}.Score("cam 2024 01 24", "front 2024 01 24")
	boosted := Scorer{DateBoost: DefaultDateBoost}.Score("cam 2024 01 24", "front 2024 01 24")
	if boosted <= base {
		t.Errorf("boosted score %v not above base %v", boosted, base)
	}
	if boosted > 1 {
		t.Errorf("boosted score %v exceeds 1", boosted)
	}

	// Differing dates must not receive the boost.
	a, b := "cam 2024 01 24", "front 2023 05 05"
	if (Scorer{DateBoost: DefaultDateBoost}).Score(a, b) != (Scorer{}).Score(a, b) {
		t.Error("date boost applied to mismatched dates")
	}
}

func TestScoreUsesNormalizedKeys(t *testing.T) {
	// The scorer operates on keys, so separator style has already been
	// erased by normalization upstream.
	keyA := matchkey.Normalize("Show.S01E01")
	keyB := matchkey.Normalize("show_s01e01")
	if got := (Scorer{}).Score(keyA, keyB); got != 1.0 {
		t.Errorf("Score over equal keys = %v, want 1.0", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"a", "b"}, []string{"a", "b"}, 1},
		{"disjoint", []string{"a"}, []string{"b"}, 0},
		{"half", []string{"a", "b"}, []string{"b", "c"}, 1.0 / 3.0},
		{"both empty", nil, nil, 0},
		{"duplicate tokens", []string{"a", "a", "b"}, []string{"a", "b"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jaccard(tt.a, tt.b); got != tt.want {
				t.Errorf("jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
