package vdf

import "errors"

var (
	// ErrParams is returned for an invalid Params value or malformed
	// proof material passed to an operation that cannot just return
	// false.
	ErrParams = errors.New("invalid vdf parameters")

	// ErrCancelled is returned by Prove when ctx is done before the
	// requested number of squarings completes.
	ErrCancelled = errors.New("vdf evaluation was cancelled")
)
