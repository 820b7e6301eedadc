package media

import (
	"path/filepath"
	"strings"
)

// Kind distinguishes media files from caption files.
type Kind int

const (
	KindMedia Kind = iota
	KindCaption
)

func (k Kind) String() string {
	switch k {
	case KindMedia:
		return "media"
	case KindCaption:
		return "caption"
	default:
		return "unknown"
	}
}

var mediaExtensions = map[string]struct{}{
	".mkv": {},
	".mov": {},
	".mp4": {},
}

var captionExtensions = map[string]struct{}{
	".srt": {},
}

// Entry describes one file discovered by a scan. Immutable once built.
type Entry struct {
	Path string
	Stem string
	Ext  string
	Kind Kind
}

// Name returns the base filename including the extension.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Classify builds an Entry for path when its extension belongs to the
// recognized media or caption sets. Returns false otherwise.
func Classify(path string) (Entry, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	var kind Kind
	switch {
	case isMediaExt(ext):
		kind = KindMedia
	case isCaptionExt(ext):
		kind = KindCaption
	default:
		return Entry{}, false
	}
	base := filepath.Base(path)
	return Entry{
		Path: path,
		Stem: strings.TrimSuffix(base, filepath.Ext(base)),
		Ext:  ext,
		Kind: kind,
	}, true
}

func isMediaExt(ext string) bool {
	_, ok := mediaExtensions[ext]
	return ok
}

func isCaptionExt(ext string) bool {
	_, ok := captionExtensions[ext]
	return ok
}
