package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subber/internal/deps"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and external dependency status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if ctx.configExists {
				fmt.Fprintf(out, "Config file: %s\n", ctx.configPath)
			} else {
				fmt.Fprintf(out, "Config file: %s (not found, using defaults)\n", ctx.configPath)
			}
			fmt.Fprintf(out, "Log directory: %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "Match threshold: %s\n", formatScore(cfg.Matching.Threshold))
			fmt.Fprintln(out)

			statuses := deps.CheckBinaries([]deps.Requirement{
				{
					Name:        "FFmpeg",
					Command:     cfg.FFmpegBinary(),
					Description: "Required for audio extraction",
				},
			})
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "available"
				if !status.Available {
					state = status.Detail
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}
			fmt.Fprintln(out, renderTable("Dependencies",
				[]string{"Name", "Command", "Status", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}
}
