// Package fileops performs the follow-up actions on a match report:
// renaming close-matched caption files to align with their media file and
// relocating unmatched media files.
//
// Both operations are partial-failure tolerant: one file that cannot be
// renamed or moved is reported and the rest of the batch continues. A
// file lock on the scan directory keeps concurrent runs from racing over
// the same tree.
package fileops
