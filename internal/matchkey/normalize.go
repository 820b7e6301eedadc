package matchkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var keyFolder = cases.Fold()

// Tokenize splits a filename stem into case-folded tokens. Runs of
// non-alphanumeric characters act as separators and produce no tokens.
func Tokenize(stem string) []string {
	folded := keyFolder.String(stem)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Normalize derives the canonical comparison key for a filename stem:
// tokens joined by single spaces. An empty or separator-only stem
// normalizes to the empty key.
func Normalize(stem string) string {
	return strings.Join(Tokenize(stem), " ")
}
