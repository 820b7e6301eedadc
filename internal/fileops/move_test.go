package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"subber/internal/media"
)

func mediaFile(t *testing.T, dir, name string) media.Entry {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	entry, ok := media.Classify(path)
	if !ok {
		t.Fatalf("not classifiable: %s", path)
	}
	return entry
}

func TestMoveUnmatched(t *testing.T) {
	dir := t.TempDir()
	entry := mediaFile(t, dir, "orphan.mkv")

	results, err := MoveUnmatched([]media.Entry{entry}, "unmatched", dir, nil, nil)
	if err != nil {
		t.Fatalf("MoveUnmatched: %v", err)
	}
	if len(results) != 1 || results[0].Status != StatusDone {
		t.Fatalf("results = %+v", results)
	}
	if _, err := os.Stat(filepath.Join(dir, "unmatched", "orphan.mkv")); err != nil {
		t.Errorf("moved file missing: %v", err)
	}
	if _, err := os.Stat(entry.Path); !os.IsNotExist(err) {
		t.Errorf("source still present: %v", err)
	}
}

func TestMoveUnmatchedSkipsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	entry := mediaFile(t, dir, "orphan.mkv")
	destDir := filepath.Join(dir, "unmatched")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(destDir, "orphan.mkv"), []byte("other"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	results, err := MoveUnmatched([]media.Entry{entry}, "unmatched", dir, nil, nil)
	if err != nil {
		t.Fatalf("MoveUnmatched: %v", err)
	}
	if results[0].Status != StatusSkipped {
		t.Errorf("status = %v, want skipped", results[0].Status)
	}
	if _, err := os.Stat(entry.Path); err != nil {
		t.Errorf("source was touched: %v", err)
	}
}

func TestMoveUnmatchedDeclined(t *testing.T) {
	dir := t.TempDir()
	entry := mediaFile(t, dir, "orphan.mkv")

	decline := func(media.Entry, string) (bool, error) { return false, nil }
	results, err := MoveUnmatched([]media.Entry{entry}, "unmatched", dir, decline, nil)
	if err != nil {
		t.Fatalf("MoveUnmatched: %v", err)
	}
	if results[0].Status != StatusDeclined {
		t.Errorf("status = %v, want declined", results[0].Status)
	}
	if _, err := os.Stat(entry.Path); err != nil {
		t.Errorf("declined file was moved: %v", err)
	}
}

func TestMoveUnmatchedNoDestination(t *testing.T) {
	dir := t.TempDir()
	entry := mediaFile(t, dir, "orphan.mkv")
	if _, err := MoveUnmatched([]media.Entry{entry}, "", dir, nil, nil); err == nil {
		t.Fatal("empty destination accepted")
	}
}

func TestMoveUnmatchedEmptyBatch(t *testing.T) {
	results, err := MoveUnmatched(nil, "unmatched", t.TempDir(), nil, nil)
	if err != nil || results != nil {
		t.Errorf("MoveUnmatched(empty) = %v, %v", results, err)
	}
}

func TestWithLockBlocksSecondHolder(t *testing.T) {
	dir := t.TempDir()
	err := WithLock(dir, func() error {
		return WithLock(dir, func() error { return nil })
	})
	if err == nil {
		t.Fatal("nested lock acquisition succeeded")
	}
}
