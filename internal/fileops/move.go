package fileops

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"

	"subber/internal/fileutil"
	"subber/internal/logging"
	"subber/internal/media"
)

// ConfirmFunc decides per file whether a move should proceed. A nil
// ConfirmFunc moves everything.
type ConfirmFunc func(entry media.Entry, destDir string) (bool, error)

// MoveUnmatched relocates the given media entries into destDir, creating
// it under baseDir when the path is relative. Existing targets are
// skipped and a single failed move never aborts the batch.
func MoveUnmatched(entries []media.Entry, destDir, baseDir string, confirm ConfirmFunc, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(entries) == 0 {
		return nil, nil
	}
	if destDir == "" {
		return nil, errors.New("no destination directory specified")
	}
	if !filepath.IsAbs(destDir) {
		destDir = filepath.Join(baseDir, destDir)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination directory: %w", err)
	}
	if err := checkFreeSpace(destDir, entries); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		target := filepath.Join(destDir, entry.Name())
		result := Result{Source: entry.Path, Target: target}

		if _, err := os.Stat(target); err == nil {
			logger.Warn("move target exists", logging.String("target", target))
			result.Status = StatusSkipped
			results = append(results, result)
			continue
		}

		if confirm != nil {
			ok, err := confirm(entry, destDir)
			if err != nil {
				return results, err
			}
			if !ok {
				result.Status = StatusDeclined
				results = append(results, result)
				continue
			}
		}

		if err := moveFile(entry.Path, target); err != nil {
			logger.Error("move failed", logging.String("source", entry.Path), logging.Error(err))
			result.Status = StatusFailed
			result.Err = err
			results = append(results, result)
			continue
		}
		logger.Debug("moved media file",
			logging.String("source", entry.Path),
			logging.String("target", target),
		)
		result.Status = StatusDone
		results = append(results, result)
	}
	return results, nil
}

// moveFile renames src to dst, falling back to a verified copy plus
// remove when the rename crosses filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("move file: %w", err)
	}
	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		return fmt.Errorf("copy across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// checkFreeSpace verifies the destination filesystem can hold the batch.
func checkFreeSpace(destDir string, entries []media.Entry) error {
	var needed uint64
	for _, entry := range entries {
		info, err := os.Stat(entry.Path)
		if err != nil {
			continue
		}
		needed += uint64(info.Size())
	}

	var st unix.Statfs_t
	if err := unix.Statfs(destDir, &st); err != nil {
		// Space checking is advisory; the move itself will surface
		// real errors.
		return nil
	}
	free := st.Bavail * uint64(st.Bsize)
	if free < needed {
		return fmt.Errorf("destination %s has %d bytes free, need %d", destDir, free, needed)
	}
	return nil
}
