package cli

import "errors"

// Sentinel errors for CLI validation
var (
	// errVerificationFailed is returned when a known vector or the domain sweep disagrees
	errVerificationFailed = errors.New("verification failed")

	// errUnknownMethod is returned when --method names no divider
	errUnknownMethod = errors.New("--method must be one of recursive, iterative, both")

	// errDividersDisagree is returned when --method both yields two different quotients
	errDividersDisagree = errors.New("recursive and iterative dividers disagree")
)
