package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"subber/internal/converter"
	"subber/internal/deps"
	"subber/internal/media"
	"subber/internal/prompt"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var directory string
	var outputDir string
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract mp3 audio from media files",
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

			status := deps.CheckFFmpeg(cfg.FFmpegBinary())
			if !status.Available {
				return fmt.Errorf("ffmpeg unavailable: %s", status.Detail)
			}

			root, err := resolveDirectory(directory)
			if err != nil {
				return err
			}

			mediaFiles, _, err := media.Scan(root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(mediaFiles) == 0 {
				fmt.Fprintln(out, "No media files found.")
				return nil
			}

			dest := outputDir
			if dest == "" {
				dest = cfg.Audio.OutputDir
			}
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(root, dest)
			}

			selected := mediaFiles
			if !assumeYes {
				labels := make([]string, 0, len(mediaFiles))
				for _, entry := range mediaFiles {
					labels = append(labels, entry.Name())
				}
				prompter := prompt.New(cmd.InOrStdin(), out)
				decisions, err := prompter.SelectEach("Extract audio from these files?", labels)
				if err != nil {
					return err
				}
				selected = make([]media.Entry, 0, len(mediaFiles))
				for i, entry := range mediaFiles {
					if decisions[i] {
						selected = append(selected, entry)
					}
				}
			}
			if len(selected) == 0 {
				fmt.Fprintln(out, "Nothing selected.")
				return nil
			}

			conv := converter.New(cfg, logger)
			results, err := conv.ConvertBatch(cmd.Context(), selected, dest)
			if err != nil {
				return err
			}

			converted := 0
			for _, result := range results {
				switch result.Outcome {
				case converter.OutcomeConverted:
					converted++
				case converter.OutcomeSkipped:
					fmt.Fprintf(out, "Skipped %s: %s already exists\n", result.Entry.Name(), result.Output)
				case converter.OutcomeFailed:
					fmt.Fprintf(out, "Failed %s: %v\n", result.Entry.Name(), result.Err)
				}
			}
			fmt.Fprintf(out, "Extracted audio from %d of %d files into %s\n", converted, len(results), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", ".", "Directory to scan for media files")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory that receives extracted mp3 files")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Extract from every media file without prompting")

	return cmd
}
