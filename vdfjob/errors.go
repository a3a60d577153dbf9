package vdfjob

import "errors"

var (
	// ErrUnknownJob is returned for any operation against a job id the
	// Manager has no record of.
	ErrUnknownJob = errors.New("unknown vdf job")

	// ErrInvalidInput is returned by CreateJob and GetMockProof for a
	// malformed VDF input.
	ErrInvalidInput = errors.New("invalid vdf job input")

	// ErrJobNotReady is returned by GetProof when the job has not yet
	// reached StatusReady.
	ErrJobNotReady = errors.New("vdf job has not produced a proof yet")

	// ErrWrongJobStatus is returned by BypassJob against a job already in
	// a terminal status.
	ErrWrongJobStatus = errors.New("job is not in a status that allows this operation")

	// ErrDevModeRequired is returned by GetMockProof when the Manager was
	// not constructed with devMode enabled. GetMockProof skips the delay
	// a VDF is meant to enforce in favor of a fake digest-based proof, so
	// it must never be reachable against a production Manager. BypassJob
	// is not gated by this error: guardian bypass of an in-flight job is
	// a standing production capability, not a dev-mode shortcut.
	ErrDevModeRequired = errors.New("this operation requires the manager to be running in dev mode")
)
