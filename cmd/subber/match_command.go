package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subber/internal/config"
	"subber/internal/fileops"
	"subber/internal/history"
	"subber/internal/logging"
	"subber/internal/matcher"
	"subber/internal/media"
	"subber/internal/prompt"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var directory string
	var outputFile string
	var noTable bool
	var fullPath bool
	var moveDir string
	var rename bool
	var threshold float64
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match media files with caption files in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			root, err := resolveDirectory(directory)
			if err != nil {
				return err
			}

			opts := matcher.Options{
				Threshold: cfg.Matching.Threshold,
				DateBoost: cfg.Matching.DateBoost,
			}
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = threshold
			}

			mediaFiles, captionFiles, err := media.Scan(root)
			if err != nil {
				return err
			}
			logger.Info("scanned directory",
				logging.String("directory", root),
				logging.Int("media_files", len(mediaFiles)),
				logging.Int("caption_files", len(captionFiles)))

			report, err := matcher.Match(mediaFiles, captionFiles, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			view := reportView{
				useTable: !noTable && stdoutIsTerminal(),
				fullPath: fullPath,
				root:     root,
			}
			view.render(out, *report)

			if outputFile != "" {
				if err := writeExport(outputFile, report); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nResults saved to %s\n", outputFile)
			}

			if cfg.History.Enabled {
				recordRun(cmd, cfg, logger, root, opts.Threshold, report)
			}

			if rename && len(report.Close) > 0 {
				if err := runRename(cmd, ctx, root, report.Close, assumeYes); err != nil {
					return err
				}
			}

			if moveDir != "" && len(report.UnmatchedMedia) > 0 {
				if err := runMove(cmd, ctx, root, moveDir, report.UnmatchedMedia, assumeYes); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", ".", "Directory to scan for media and caption files")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Save the match report to a text file")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Print plain text instead of tables")
	cmd.Flags().BoolVarP(&fullPath, "full-path", "p", false, "Show absolute paths instead of paths relative to the scan root")
	cmd.Flags().StringVarP(&moveDir, "move-unmatched", "m", "", "Move unmatched media files into this directory under the scan root")
	cmd.Flags().BoolVarP(&rename, "rename", "r", false, "Offer to rename close-matched caption files to their media stems")
	cmd.Flags().Float64Var(&threshold, "threshold", matcher.DefaultOptions().Threshold, "Minimum similarity for a close match, in [0, 1]")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Apply actions to every file without prompting")

	return cmd
}

func resolveDirectory(directory string) (string, error) {
	expanded, err := config.ExpandPath(directory)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func writeExport(path string, report *matcher.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()
	if err := exportReport(file, *report); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

func recordRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, root string, threshold float64, report *matcher.Report) {
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()
	if _, err := store.RecordRun(cmd.Context(), root, threshold, report); err != nil {
		logger.Warn("record run", logging.Error(err))
	}
}

func runRename(cmd *cobra.Command, ctx *commandContext, root string, pairs []matcher.ScoredPair, assumeYes bool) error {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	selected := make([]bool, len(pairs))
	if assumeYes {
		for i := range selected {
			selected[i] = true
		}
	} else {
		labels := make([]string, 0, len(pairs))
		for _, pair := range pairs {
			labels = append(labels, fmt.Sprintf("%s --> %s", pair.Caption.Name(), filepath.Base(fileops.RenameTarget(pair))))
		}
		prompter := prompt.New(cmd.InOrStdin(), out)
		selected, err = prompter.SelectEach("Rename caption files?", labels)
		if err != nil {
			return err
		}
	}

	var results []fileops.Result
	err = fileops.WithLock(root, func() error {
		results = fileops.RenameCaptions(pairs, selected, logger)
		return nil
	})
	if err != nil {
		return err
	}

	printResults(out, "Renamed", results)
	return nil
}

func runMove(cmd *cobra.Command, ctx *commandContext, root, destDir string, entries []media.Entry, assumeYes bool) error {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var confirm fileops.ConfirmFunc
	if !assumeYes {
		prompter := prompt.New(cmd.InOrStdin(), out)
		confirm = func(entry media.Entry, dest string) (bool, error) {
			return prompter.Confirm(fmt.Sprintf("Move %s to %s?", entry.Name(), dest), true)
		}
	}

	var results []fileops.Result
	err = fileops.WithLock(root, func() error {
		var moveErr error
		results, moveErr = fileops.MoveUnmatched(entries, destDir, root, confirm, logger)
		return moveErr
	})
	if err != nil {
		return err
	}

	printResults(out, "Moved", results)
	return nil
}

func printResults(out io.Writer, verb string, results []fileops.Result) {
	done := 0
	for _, result := range results {
		switch result.Status {
		case fileops.StatusDone:
			done++
		case fileops.StatusSkipped:
			fmt.Fprintf(out, "Skipped %s: target %s already exists\n", result.Source, result.Target)
		case fileops.StatusFailed:
			fmt.Fprintf(out, "Failed %s: %v\n", result.Source, result.Err)
		}
	}
	fmt.Fprintf(out, "%s %d of %d files.\n", verb, done, len(results))
}
