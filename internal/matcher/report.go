package matcher

import (
	"fmt"

	"subber/internal/media"
)

// Pair is an exact media/caption pairing.
type Pair struct {
	Media   media.Entry
	Caption media.Entry
}

// ScoredPair is a close media/caption pairing with its similarity score.
type ScoredPair struct {
	Media   media.Entry
	Caption media.Entry
	Score   float64
}

// Report is the final classification of one matching run. Immutable after
// assembly; every input entry appears in exactly one of the four buckets.
type Report struct {
	Exact             []Pair
	Close             []ScoredPair
	UnmatchedMedia    []media.Entry
	UnmatchedCaptions []media.Entry
}

// BuildReport assembles the report and verifies the closed-partition
// invariant against the original input sets. A violation returns an error
// wrapping ErrConsistency.
func BuildReport(inputMedia, inputCaptions []media.Entry, exact []Pair, closePairs []ScoredPair, unmatchedMedia, unmatchedCaptions []media.Entry) (*Report, error) {
	outMedia := make([]media.Entry, 0, len(inputMedia))
	outCaptions := make([]media.Entry, 0, len(inputCaptions))
	for _, p := range exact {
		outMedia = append(outMedia, p.Media)
		outCaptions = append(outCaptions, p.Caption)
	}
	for _, p := range closePairs {
		outMedia = append(outMedia, p.Media)
		outCaptions = append(outCaptions, p.Caption)
	}
	outMedia = append(outMedia, unmatchedMedia...)
	outCaptions = append(outCaptions, unmatchedCaptions...)

	if err := verifyPartition("media", inputMedia, outMedia); err != nil {
		return nil, err
	}
	if err := verifyPartition("caption", inputCaptions, outCaptions); err != nil {
		return nil, err
	}

	return &Report{
		Exact:             exact,
		Close:             closePairs,
		UnmatchedMedia:    unmatchedMedia,
		UnmatchedCaptions: unmatchedCaptions,
	}, nil
}

// verifyPartition checks that the classified entries are exactly the input
// entries: none dropped, none duplicated, none invented.
func verifyPartition(kind string, input, output []media.Entry) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: %s set has %d inputs but %d classified entries", ErrConsistency, kind, len(input), len(output))
	}
	counts := make(map[string]int, len(input))
	for _, e := range input {
		counts[e.Path]++
	}
	for _, e := range output {
		counts[e.Path]--
		if counts[e.Path] < 0 {
			return fmt.Errorf("%w: %s entry %q classified more than once", ErrConsistency, kind, e.Path)
		}
	}
	for path, n := range counts {
		if n != 0 {
			return fmt.Errorf("%w: %s entry %q missing from classification", ErrConsistency, kind, path)
		}
	}
	return nil
}
