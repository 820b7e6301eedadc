package matcher

import (
	"sort"

	"subber/internal/matchkey"
	"subber/internal/media"
)

type candidate struct {
	mediaIdx   int
	captionIdx int
	score      float64
}

// Resolve assigns the remaining media and caption files one-to-one using a
// greedy best-first walk over every combination scoring at or above the
// threshold. Candidates are sorted descending by score with ties broken by
// (media path, caption path), so identical inputs always produce identical
// output. Entries never claimed are returned in their original order.
func Resolve(remainingMedia, remainingCaptions []media.Entry, threshold float64, scorer Scorer) (closePairs []ScoredPair, unmatchedMedia, unmatchedCaptions []media.Entry) {
	if len(remainingMedia) == 0 || len(remainingCaptions) == 0 {
		return nil, remainingMedia, remainingCaptions
	}

	mediaKeys := make([]string, len(remainingMedia))
	for i, m := range remainingMedia {
		mediaKeys[i] = matchkey.Normalize(m.Stem)
	}
	captionKeys := make([]string, len(remainingCaptions))
	for i, c := range remainingCaptions {
		captionKeys[i] = matchkey.Normalize(c.Stem)
	}

	candidates := make([]candidate, 0, len(remainingMedia)*len(remainingCaptions))
	for i := range remainingMedia {
		for j := range remainingCaptions {
			score := scorer.Score(mediaKeys[i], captionKeys[j])
			if score >= threshold {
				candidates = append(candidates, candidate{mediaIdx: i, captionIdx: j, score: score})
			}
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		pa, pb := remainingMedia[ca.mediaIdx].Path, remainingMedia[cb.mediaIdx].Path
		if pa != pb {
			return pa < pb
		}
		return remainingCaptions[ca.captionIdx].Path < remainingCaptions[cb.captionIdx].Path
	})

	claimedMedia := make([]bool, len(remainingMedia))
	claimedCaptions := make([]bool, len(remainingCaptions))
	for _, c := range candidates {
		if claimedMedia[c.mediaIdx] || claimedCaptions[c.captionIdx] {
			continue
		}
		claimedMedia[c.mediaIdx] = true
		claimedCaptions[c.captionIdx] = true
		closePairs = append(closePairs, ScoredPair{
			Media:   remainingMedia[c.mediaIdx],
			Caption: remainingCaptions[c.captionIdx],
			Score:   c.score,
		})
	}

	for i, m := range remainingMedia {
		if !claimedMedia[i] {
			unmatchedMedia = append(unmatchedMedia, m)
		}
	}
	for i, c := range remainingCaptions {
		if !claimedCaptions[i] {
			unmatchedCaptions = append(unmatchedCaptions, c)
		}
	}
	return closePairs, unmatchedMedia, unmatchedCaptions
}
