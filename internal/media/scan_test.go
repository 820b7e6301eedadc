package media

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanCollectsByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "movie.mkv"))
	touch(t, filepath.Join(dir, "movie.srt"))
	touch(t, filepath.Join(dir, "clip.MP4"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "show.mov"))
	touch(t, filepath.Join(dir, "._movie.mkv"))

	mediaFiles, captions, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(mediaFiles) != 3 {
		t.Errorf("media count = %d, want 3", len(mediaFiles))
	}
	if len(captions) != 1 {
		t.Errorf("caption count = %d, want 1", len(captions))
	}
	for _, e := range mediaFiles {
		if e.Kind != KindMedia {
			t.Errorf("entry %q has kind %v, want media", e.Path, e.Kind)
		}
		if filepath.Base(e.Path)[:2] == "._" {
			t.Errorf("resource fork file %q was not skipped", e.Path)
		}
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mkv", "a.mkv", "c.mkv"} {
		touch(t, filepath.Join(dir, name))
	}
	first, _, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	second, _, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("scan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Path != second[i].Path {
			t.Errorf("order differs at %d: %q vs %q", i, first[i].Path, second[i].Path)
		}
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("Scan of missing directory succeeded, want error")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
		ok   bool
	}{
		{"/x/Show.S01E01.mkv", KindMedia, true},
		{"/x/Show.S01E01.srt", KindCaption, true},
		{"/x/Show.S01E01.SRT", KindCaption, true},
		{"/x/readme.md", 0, false},
		{"/x/noext", 0, false},
	}
	for _, tt := range tests {
		entry, ok := Classify(tt.path)
		if ok != tt.ok {
			t.Errorf("Classify(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if entry.Kind != tt.kind {
			t.Errorf("Classify(%q) kind = %v, want %v", tt.path, entry.Kind, tt.kind)
		}
		if entry.Stem != "Show.S01E01" {
			t.Errorf("Classify(%q) stem = %q", tt.path, entry.Stem)
		}
	}
}
