// Package matchkey derives comparison keys from filename stems.
//
// A key is the case-folded stem with separator noise collapsed into a
// canonical space-joined token sequence, so stems that differ only in case
// or separator style produce identical keys. The package also recognizes
// calendar dates embedded in stems, which the matcher uses to boost
// similarity between files recorded on the same day.
//
// Keys are derived on demand and never persisted; both Normalize and
// ExtractDate are pure functions of their input.
package matchkey
