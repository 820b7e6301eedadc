package converter

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"subber/internal/config"
	"subber/internal/media"
)

func testConverter() *Converter {
	cfg := config.Default()
	return New(&cfg, nil)
}

func TestExtractArgs(t *testing.T) {
	got := extractArgs("in.mkv", "0", "out/in.mp3")
	want := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", "in.mkv",
		"-q:a", "0",
		"-map", "a",
		"out/in.mp3",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractArgs = %v, want %v", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	entry, _ := media.Classify("/videos/Show.S01E01.mkv")
	c := testConverter()
	got := c.OutputPath("/videos/audio_files", entry)
	if got != filepath.Join("/videos/audio_files", "Show.S01E01.mp3") {
		t.Errorf("OutputPath = %q", got)
	}
}

func TestConvertSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	entry, _ := media.Classify(filepath.Join(dir, "clip.mkv"))
	existing := filepath.Join(dir, "clip.mp3")
	if err := os.WriteFile(existing, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}

	result := testConverter().Convert(context.Background(), entry, dir)
	if result.Outcome != OutcomeSkipped {
		t.Errorf("outcome = %v, want skipped", result.Outcome)
	}
}

func TestConvertBatchEmpty(t *testing.T) {
	results, err := testConverter().ConvertBatch(context.Background(), nil, t.TempDir())
	if err != nil {
		t.Fatalf("ConvertBatch: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestConvertBatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entry, _ := media.Classify("missing.mkv")
	_, err := testConverter().ConvertBatch(ctx, []media.Entry{entry}, t.TempDir())
	if err == nil {
		t.Fatal("cancelled batch reported no error")
	}
}
