// Package converter extracts audio from media files to mp3 via ffmpeg.
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"subber/internal/config"
	"subber/internal/logging"
	"subber/internal/media"
)

// Outcome classifies the result of one conversion.
type Outcome int

const (
	OutcomeConverted Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of converting one media file.
type Result struct {
	Entry   media.Entry
	Output  string
	Outcome Outcome
	Err     error
}

// Converter runs ffmpeg audio extraction.
type Converter struct {
	ffmpeg  string
	quality string
	logger  *slog.Logger
}

// New builds a Converter from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		ffmpeg:  cfg.FFmpegBinary(),
		quality: cfg.Audio.Quality,
		logger:  logger.With(logging.String("component", "converter")),
	}
}

// OutputPath returns the mp3 path a media entry converts into.
func (c *Converter) OutputPath(outputDir string, entry media.Entry) string {
	return filepath.Join(outputDir, entry.Stem+".mp3")
}

// Convert extracts the audio of one media file into outputDir. Existing
// outputs are skipped, never overwritten.
func (c *Converter) Convert(ctx context.Context, entry media.Entry, outputDir string) Result {
	dest := c.OutputPath(outputDir, entry)
	if _, err := os.Stat(dest); err == nil {
		c.logger.Debug("output exists, skipping", logging.String("output", dest))
		return Result{Entry: entry, Output: dest, Outcome: OutcomeSkipped}
	}

	args := extractArgs(entry.Path, c.quality, dest)
	cmd := exec.CommandContext(ctx, c.ffmpeg, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		runErr := fmt.Errorf("ffmpeg extract: %w: %s", err, strings.TrimSpace(string(output)))
		c.logger.Error("conversion failed", logging.String("source", entry.Path), logging.Error(runErr))
		return Result{Entry: entry, Output: dest, Outcome: OutcomeFailed, Err: runErr}
	}

	c.logger.Debug("converted", logging.String("source", entry.Path), logging.String("output", dest))
	return Result{Entry: entry, Output: dest, Outcome: OutcomeConverted}
}

// ConvertBatch converts the given media files one by one. A failure on one
// file never aborts the rest of the batch.
func (c *Converter) ConvertBatch(ctx context.Context, entries []media.Entry, outputDir string) ([]Result, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio output directory: %w", err)
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, c.Convert(ctx, entry, outputDir))
	}
	return results, nil
}

// extractArgs builds the ffmpeg argument list for audio-only mp3
// extraction at the configured VBR quality.
func extractArgs(source, quality, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-q:a", quality,
		"-map", "a",
		dest,
	}
}
