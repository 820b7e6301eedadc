package matcher

import (
	"strings"

	"subber/internal/matchkey"
)

// DefaultDateBoost is added to a pair's score when both stems embed the
// same calendar date.
const DefaultDateBoost = 0.3

// Scorer rates the similarity of two normalized keys on a [0, 1] scale.
// The zero value disables the date boost.
type Scorer struct {
	DateBoost float64
}

// Score computes the similarity between a media key and a caption key.
// Identical non-empty keys score 1.0; an empty key on either side scores 0.
// Otherwise the score blends token-set overlap (Jaccard) with normalized
// Levenshtein similarity over the full keys, plus the date boost when both
// keys embed the same date. Pure function of the two keys.
func (s Scorer) Score(mediaKey, captionKey string) float64 {
	if mediaKey == "" || captionKey == "" {
		return 0
	}
	if mediaKey == captionKey {
		return 1
	}

	overlap := jaccard(strings.Fields(mediaKey), strings.Fields(captionKey))
	edit := editSimilarity(mediaKey, captionKey)
	score := 0.5*overlap + 0.5*edit

	if s.DateBoost > 0 {
		if mediaDate, ok := matchkey.ExtractDate(mediaKey); ok {
			if captionDate, ok := matchkey.ExtractDate(captionKey); ok && mediaDate.Equal(captionDate) {
				score += s.DateBoost
			}
		}
	}

	if score > 1 {
		return 1
	}
	return score
}

// jaccard computes |A ∩ B| / |A ∪ B| over two token lists.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(a))
	for _, token := range a {
		seen[token] = struct{}{}
	}
	inB := make(map[string]struct{}, len(b))
	intersection := 0
	for _, token := range b {
		if _, dup := inB[token]; dup {
			continue
		}
		inB[token] = struct{}{}
		if _, ok := seen[token]; ok {
			intersection++
		}
	}
	union := len(seen) + len(inB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// editSimilarity maps Levenshtein distance into [0, 1], where 1 means the
// strings are identical.
func editSimilarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between two strings using a
// single-row dynamic program.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := curr[j-1] + 1
			if v := prev[j] + 1; v < best {
				best = v
			}
			if v := prev[j-1] + cost; v < best {
				best = v
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
