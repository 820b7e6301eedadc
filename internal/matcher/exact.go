package matcher

import (
	"subber/internal/matchkey"
	"subber/internal/media"
)

// SplitExact partitions the input sets into exact pairs and two remainder
// sets. Captions are grouped by normalized key with the first-seen caption
// per key holding the exact slot; later captions with the same key flow
// into the remainder. Exact pairs follow the input media ordering.
func SplitExact(mediaFiles, captionFiles []media.Entry) (exact []Pair, remainingMedia, remainingCaptions []media.Entry) {
	firstByKey := make(map[string]int, len(captionFiles))
	for i, caption := range captionFiles {
		key := matchkey.Normalize(caption.Stem)
		if _, ok := firstByKey[key]; !ok {
			firstByKey[key] = i
		}
	}

	claimed := make(map[int]bool)
	for _, m := range mediaFiles {
		key := matchkey.Normalize(m.Stem)
		if idx, ok := firstByKey[key]; ok && !claimed[idx] {
			claimed[idx] = true
			exact = append(exact, Pair{Media: m, Caption: captionFiles[idx]})
			continue
		}
		remainingMedia = append(remainingMedia, m)
	}

	for i, caption := range captionFiles {
		if !claimed[i] {
			remainingCaptions = append(remainingCaptions, caption)
		}
	}
	return exact, remainingMedia, remainingCaptions
}
