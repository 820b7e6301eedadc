package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"subber/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded matching runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				return showRun(cmd, store, args[0])
			}
			return listRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	return cmd
}

func listRuns(cmd *cobra.Command, store *history.Store, limit int) error {
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.CreatedAt.Local().Format(time.DateTime),
			run.Directory,
			formatScore(run.Threshold),
			strconv.Itoa(run.ExactCount),
			strconv.Itoa(run.CloseCount),
			strconv.Itoa(run.UnmatchedMedia + run.UnmatchedCaptions),
		})
	}
	fmt.Fprintln(out, renderTable("Runs",
		[]string{"ID", "When", "Directory", "Threshold", "Exact", "Close", "Unmatched"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}))
	return nil
}

func showRun(cmd *cobra.Command, store *history.Store, id string) error {
	run, pairs, err := store.GetRun(cmd.Context(), id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "Directory: %s\n", run.Directory)
	fmt.Fprintf(out, "When: %s\n", run.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Threshold: %s\n", formatScore(run.Threshold))
	fmt.Fprintf(out, "Unmatched: %d media, %d captions\n", run.UnmatchedMedia, run.UnmatchedCaptions)

	if len(pairs) == 0 {
		fmt.Fprintln(out, "No pairs recorded for this run.")
		return nil
	}

	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair.Kind, pair.MediaPath, pair.CaptionPath, formatScore(pair.Score)})
	}
	fmt.Fprintln(out, renderTable("Pairs",
		[]string{"Kind", "Media", "Caption", "Similarity"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
	return nil
}
