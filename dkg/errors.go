package dkg

import "errors"

// ErrConfig is returned when a (threshold, totalParticipants) pair is
// invalid: the threshold must be positive and must not exceed the group
// size.
var ErrConfig = errors.New("invalid dkg configuration")
