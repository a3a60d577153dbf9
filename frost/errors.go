package frost

import "errors"

var (
	// ErrNonceCollision is returned by Signer.GenerateCommitment when a
	// nonce pair already exists for the given session id. Nonces are
	// single-use; a guardian never generates two commitments for the same
	// signing attempt.
	ErrNonceCollision = errors.New("nonce already committed for this session")

	// ErrNonceMissing is returned by Signer.GenerateSignatureShare when no
	// nonce is stored for the session, either because GenerateCommitment
	// was never called or because the nonce was already consumed by an
	// earlier call.
	ErrNonceMissing = errors.New("no nonce commitment stored for this session")

	// ErrDuplicateParticipant is returned when a participant set used for
	// Lagrange interpolation contains the same guardian id more than
	// once, which would otherwise produce a zero denominator.
	ErrDuplicateParticipant = errors.New("duplicate participant id in commitment set")

	// ErrUnknownSession is returned by every Coordinator method when the
	// session id does not exist.
	ErrUnknownSession = errors.New("unknown session")

	// ErrWrongPhase is returned when a Coordinator method is called
	// against a session that is not in the phase that operation requires.
	ErrWrongPhase = errors.New("operation not valid in the session's current phase")

	// ErrIdentityMismatch is returned when the guardian id a caller
	// asserts does not match the guardian id embedded in the commitment
	// or share being submitted.
	ErrIdentityMismatch = errors.New("submitter id does not match the submitted material")

	// ErrDuplicateSubmission is returned when a guardian submits a second
	// commitment or signature share for a session it already contributed
	// to.
	ErrDuplicateSubmission = errors.New("guardian already submitted for this session")

	// ErrPrematureRead is returned by Coordinator.GetCommitmentList when
	// the session has not yet left the commitment phase.
	ErrPrematureRead = errors.New("commitment list not yet available")

	// ErrMissingCommitment is returned when a guardian attempts to submit
	// a signature share without having first submitted a commitment in
	// the same session.
	ErrMissingCommitment = errors.New("guardian did not submit a commitment for this session")

	// ErrInsufficientShares is returned by Coordinator.AggregateSignature
	// when fewer than the threshold number of signature shares have been
	// collected.
	ErrInsufficientShares = errors.New("not enough signature shares to aggregate")

	// ErrInsufficientCommitments is returned by Signer.GenerateSignatureShare
	// when fewer than the threshold number of Round One commitments are
	// presented for the session.
	ErrInsufficientCommitments = errors.New("not enough commitments to generate a signature share")

	// ErrAggregationFailure is returned when an aggregated signature
	// fails self-verification. It is terminal: the session moves to
	// failed and is not retried automatically.
	ErrAggregationFailure = errors.New("aggregated signature failed self-verification")
)
