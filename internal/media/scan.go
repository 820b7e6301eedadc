package media

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scan walks the directory tree rooted at dir and collects media and
// caption entries in deterministic walk order. macOS resource-fork files
// ("._" prefix) are skipped.
func Scan(dir string) (mediaFiles, captionFiles []Entry, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("stat scan directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("scan directory %q is not a directory", dir)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %q: %w", path, walkErr)
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), "._") {
			return nil
		}
		entry, ok := Classify(path)
		if !ok {
			return nil
		}
		switch entry.Kind {
		case KindMedia:
			mediaFiles = append(mediaFiles, entry)
		case KindCaption:
			captionFiles = append(captionFiles, entry)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return mediaFiles, captionFiles, nil
}
