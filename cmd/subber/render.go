package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"subber/internal/matcher"
	"subber/internal/media"
)

// reportView controls how a match report is written to the terminal.
type reportView struct {
	useTable bool
	fullPath bool
	root     string
}

func (v reportView) display(path string) string {
	if v.fullPath {
		return path
	}
	rel, err := filepath.Rel(v.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

func (v reportView) render(out io.Writer, report matcher.Report) {
	v.renderExact(out, report.Exact)
	fmt.Fprintln(out)
	v.renderClose(out, report.Close)
	fmt.Fprintln(out)
	v.renderUnmatched(out, "Unmatched Media Files", report.UnmatchedMedia, "All media files have matching captions.")
	fmt.Fprintln(out)
	v.renderUnmatched(out, "Unmatched Caption Files", report.UnmatchedCaptions, "All caption files have matching media.")
}

func (v reportView) renderExact(out io.Writer, pairs []matcher.Pair) {
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No exact matches found.")
		return
	}
	if !v.useTable {
		fmt.Fprintln(out, "Exact Matches:")
		for _, pair := range pairs {
			fmt.Fprintf(out, "  %s --> %s\n", v.display(pair.Media.Path), v.display(pair.Caption.Path))
		}
		return
	}
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{v.display(pair.Media.Path), v.display(pair.Caption.Path)})
	}
	fmt.Fprintln(out, renderTable("Exact Matches", []string{"Media", "Caption"}, rows, []columnAlignment{alignLeft, alignLeft}))
}

func (v reportView) renderClose(out io.Writer, pairs []matcher.ScoredPair) {
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No close matches found.")
		return
	}
	if !v.useTable {
		fmt.Fprintln(out, "Close Matches:")
		for _, pair := range pairs {
			fmt.Fprintf(out, "  %s --> %s (Similarity: %s)\n", v.display(pair.Media.Path), v.display(pair.Caption.Path), formatScore(pair.Score))
		}
		return
	}
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{v.display(pair.Media.Path), v.display(pair.Caption.Path), formatScore(pair.Score)})
	}
	fmt.Fprintln(out, renderTable("Close Matches", []string{"Media", "Caption", "Similarity"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
}

func (v reportView) renderUnmatched(out io.Writer, title string, entries []media.Entry, emptyMessage string) {
	if len(entries) == 0 {
		fmt.Fprintln(out, emptyMessage)
		return
	}
	if !v.useTable {
		fmt.Fprintf(out, "%s:\n", title)
		for _, entry := range entries {
			fmt.Fprintf(out, "  %s\n", v.display(entry.Path))
		}
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{v.display(entry.Path)})
	}
	fmt.Fprintln(out, renderTable(title, []string{"File"}, rows, []columnAlignment{alignLeft}))
}

// exportReport writes a plain-text rendition of the report suitable for
// saving alongside the scanned directory.
func exportReport(out io.Writer, report matcher.Report) error {
	if _, err := fmt.Fprintln(out, "Exact Matches:"); err != nil {
		return err
	}
	for _, pair := range report.Exact {
		if _, err := fmt.Fprintf(out, "%s --> %s\n", pair.Media.Path, pair.Caption.Path); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "\nClose Matches:"); err != nil {
		return err
	}
	for _, pair := range report.Close {
		if _, err := fmt.Fprintf(out, "%s --> %s (Similarity: %s)\n", pair.Media.Path, pair.Caption.Path, formatScore(pair.Score)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "\nUnmatched Media Files:"); err != nil {
		return err
	}
	for _, entry := range report.UnmatchedMedia {
		if _, err := fmt.Fprintln(out, entry.Path); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "\nUnmatched Caption Files:"); err != nil {
		return err
	}
	for _, entry := range report.UnmatchedCaptions {
		if _, err := fmt.Fprintln(out, entry.Path); err != nil {
			return err
		}
	}
	return nil
}
