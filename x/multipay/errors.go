package multipay

import "github.com/iov-one/vane/errors"

// Multipay reserves 1000~1009 error codes
var (
	// ErrMultiSigCallFailed is returned when releasing or reverting escrow
	// funds fails. The message carries the underlying cause.
	ErrMultiSigCallFailed = errors.Register(1000, "multi-signature call failed")

	// ErrInvalidResolver is returned when a resolver choice cannot be
	// turned into a resolver.
	ErrInvalidResolver = errors.Register(1001, "invalid resolver")
)
