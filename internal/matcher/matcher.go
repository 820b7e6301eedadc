package matcher

import (
	"fmt"

	"subber/internal/media"
)

// Options configures a matching run.
type Options struct {
	// Threshold is the minimum similarity for a close match, in [0, 1].
	Threshold float64
	// DateBoost is added when both stems embed the same calendar date.
	DateBoost float64
}

// DefaultOptions returns the matching knobs used when nothing is configured.
func DefaultOptions() Options {
	return Options{Threshold: 0.75, DateBoost: DefaultDateBoost}
}

// Match classifies the two input sets into a Report. The threshold is
// validated before any matching begins.
func Match(mediaFiles, captionFiles []media.Entry, opts Options) (*Report, error) {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.Threshold)
	}

	exact, remainingMedia, remainingCaptions := SplitExact(mediaFiles, captionFiles)
	scorer := Scorer{DateBoost: opts.DateBoost}
	closePairs, unmatchedMedia, unmatchedCaptions := Resolve(remainingMedia, remainingCaptions, opts.Threshold, scorer)
	return BuildReport(mediaFiles, captionFiles, exact, closePairs, unmatchedMedia, unmatchedCaptions)
}
