// Package media models the files the matcher operates on and scans
// directory trees for them.
//
// An Entry is an immutable record of one media or caption file discovered
// during a scan: its path, its stem (filename without extension), its
// extension, and its kind. Entries are produced once per scan and never
// shared between runs; downstream packages treat them as values.
//
// Recognized media extensions are .mkv, .mov, and .mp4; captions are .srt.
// Extension comparison is case-insensitive.
package media
