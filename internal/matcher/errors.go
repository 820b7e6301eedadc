package matcher

import "errors"

var (
	// ErrInvalidThreshold reports a similarity threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("similarity threshold must be between 0 and 1")

	// ErrConsistency reports a violation of the closed-partition invariant
	// during report assembly. It signals a defect in the exact matcher or
	// the resolver and is never expected in correct operation.
	ErrConsistency = errors.New("match report consistency violation")
)
