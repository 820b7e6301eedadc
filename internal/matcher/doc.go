// Package matcher pairs media files with caption files.
//
// Matching runs in three phases. Exact matching pairs files whose
// normalized filename keys are identical. The similarity scorer then rates
// every remaining media/caption combination on token overlap, edit
// distance, and shared embedded dates. Finally the resolver walks the
// scored candidates best-first, committing each pair whose files are both
// still unclaimed, which yields a deterministic conflict-free one-to-one
// assignment above the configured threshold.
//
// The greedy best-first walk is a deliberate approximation: it is not
// guaranteed to find the global maximum-weight matching, but it is simple,
// reproducible, and more than adequate for directory-sized inputs.
//
// The resulting Report is a closed partition of the inputs: every entry
// lands in exactly one of exact, close, unmatched media, or unmatched
// captions. Report assembly verifies this and fails with ErrConsistency
// if an upstream defect ever breaks it.
package matcher
