package fileops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"subber/internal/logging"
	"subber/internal/matcher"
)

// Status classifies the result of one rename or move.
type Status int

const (
	StatusDone Status = iota
	StatusSkipped
	StatusFailed
	StatusDeclined
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// Result records the outcome of one file operation.
type Result struct {
	Source string
	Target string
	Status Status
	Err    error
}

// RenameTarget returns the path a close-matched caption renames into: the
// media file's stem with the caption's extension, in the caption's
// directory.
func RenameTarget(pair matcher.ScoredPair) string {
	dir := filepath.Dir(pair.Caption.Path)
	return filepath.Join(dir, pair.Media.Stem+pair.Caption.Ext)
}

// RenameCaptions renames the selected close-matched captions to their
// media file's stem. Pairs whose target already exists are skipped; one
// failure never stops the batch.
func RenameCaptions(pairs []matcher.ScoredPair, selected []bool, logger *slog.Logger) []Result {
	if logger == nil {
		logger = logging.NewNop()
	}
	results := make([]Result, 0, len(pairs))
	for i, pair := range pairs {
		if i >= len(selected) || !selected[i] {
			continue
		}
		target := RenameTarget(pair)
		result := Result{Source: pair.Caption.Path, Target: target}

		if pair.Caption.Path == target {
			result.Status = StatusSkipped
			results = append(results, result)
			continue
		}
		if _, err := os.Stat(target); err == nil {
			logger.Warn("rename target exists", logging.String("target", target))
			result.Status = StatusSkipped
			results = append(results, result)
			continue
		}
		if err := os.Rename(pair.Caption.Path, target); err != nil {
			logger.Error("rename failed", logging.String("source", pair.Caption.Path), logging.Error(err))
			result.Status = StatusFailed
			result.Err = fmt.Errorf("rename caption: %w", err)
			results = append(results, result)
			continue
		}
		logger.Debug("renamed caption",
			logging.String("source", pair.Caption.Path),
			logging.String("target", target),
		)
		result.Status = StatusDone
		results = append(results, result)
	}
	return results
}
