package matchkey

import (
	"reflect"
	"testing"
)

func TestNormalizeSeparatorStyles(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"dots vs underscores", "Movie.Name.2020", "movie_name_2020"},
		{"dashes vs spaces", "My-Cool-Video", "my cool video"},
		{"mixed separators", "Show.S01E01_Final", "show-s01e01 final"},
		{"surrounding noise", "..Movie..", "movie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Normalize(tt.a), Normalize(tt.b); got != want {
				t.Errorf("Normalize(%q) = %q, Normalize(%q) = %q; want equal", tt.a, got, tt.b, want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	stem := "The.Big-Movie_2024"
	if Normalize(stem) != Normalize(stem) {
		t.Fatal("Normalize is not deterministic")
	}
	if got, want := Normalize(stem), "the big movie 2024"; got != want {
		t.Errorf("Normalize(%q) = %q, want %q", stem, got, want)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	tests := []string{"", "...", "-_-", "   "}
	for _, stem := range tests {
		if got := Normalize(stem); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty key", stem, got)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The.Big.Movie-2024")
	want := []string{"the", "big", "movie", "2024"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeUnicodeFolding(t *testing.T) {
	a := Tokenize("Amélie")
	b := Tokenize("AMÉLIE")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Tokenize folding mismatch: %v vs %v", a, b)
	}
}
