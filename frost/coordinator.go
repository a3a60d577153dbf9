package frost

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/defiguardian/guardian-core/dkg"
	"go.dedis.ch/kyber/v3"
)

// SessionStatus is a signing session's current phase. Transitions are
// monotone: commitment -> signature -> {complete, failed}. Nothing ever
// moves backward.
type SessionStatus int

const (
	StatusCommitment SessionStatus = iota
	StatusSignature
	StatusComplete
	StatusFailed
)

func (s SessionStatus) String() string {
	switch s {
	case StatusCommitment:
		return "commitment"
	case StatusSignature:
		return "signature"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionSnapshot is a stable, read-only view of a session's progress.
type SessionSnapshot struct {
	Status              SessionStatus
	CommitmentsReceived int
	SharesReceived      int
	ThresholdRequired   int
}

// session is the Coordinator's internal record for one signing operation.
// Every field access is guarded by mu; the Coordinator never hands out a
// pointer to a session's internals.
type session struct {
	mu sync.Mutex

	proposalID string
	message    []byte
	status     SessionStatus
	createdAt  time.Time

	commitments     map[int]*Commitment
	commitmentOrder []int
	shares          map[int]*SignatureShare
}

// Coordinator drives the FROST signing state machine: it collects Round
// One commitments, gates the transition into Round Two once a threshold
// is reached, collects signature shares, and aggregates + self-verifies
// the final signature.
//
// A Coordinator hosts many independent sessions concurrently. Operations
// on a single session are serialized by that session's own lock; a
// coordinator-wide RWMutex guards the session map itself.
type Coordinator struct {
	suite          dkg.Suite
	groupPublicKey kyber.Point
	threshold      int

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewCoordinator creates a Coordinator for a group with the given public
// key and signing threshold.
func NewCoordinator(suite dkg.Suite, groupPublicKey kyber.Point, threshold int) *Coordinator {
	return &Coordinator{
		suite:          suite,
		groupPublicKey: groupPublicKey,
		threshold:      threshold,
		sessions:       make(map[string]*session),
	}
}

// StartSession begins a new signing operation over message on behalf of
// proposalID and returns a fresh session id.
func (c *Coordinator) StartSession(proposalID string, message []byte) (string, error) {
	sessionID, err := newSessionID()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessions[sessionID] = &session{
		proposalID:  proposalID,
		message:     message,
		status:      StatusCommitment,
		createdAt:   time.Now(),
		commitments: make(map[int]*Commitment),
		shares:      make(map[int]*SignatureShare),
	}

	return sessionID, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (c *Coordinator) getSession(sessionID string) (*session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}
	return s, nil
}

// SubmitCommitment records guardianID's Round One commitment for
// sessionID. Once the threshold number of distinct commitments has been
// received, the session atomically moves from commitment to signature.
func (c *Coordinator) SubmitCommitment(sessionID string, guardianID int, commitment *Commitment) error {
	s, err := c.getSession(sessionID)
	if err != nil {
		return err
	}
	if commitment.GuardianID != guardianID {
		return fmt.Errorf("%w: submitter %d, commitment claims %d", ErrIdentityMismatch, guardianID, commitment.GuardianID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusCommitment {
		return fmt.Errorf("%w: session is in phase %s", ErrWrongPhase, s.status)
	}
	if _, exists := s.commitments[guardianID]; exists {
		return fmt.Errorf("%w: guardian %d already submitted a commitment", ErrDuplicateSubmission, guardianID)
	}

	s.commitments[guardianID] = commitment
	s.commitmentOrder = append(s.commitmentOrder, guardianID)

	if len(s.commitments) >= c.threshold {
		s.status = StatusSignature
	}

	return nil
}

// GetCommitmentList returns the canonicalized commitments collected for
// sessionID. It is only available once the session has left the
// commitment phase.
func (c *Coordinator) GetCommitmentList(sessionID string) ([]*Commitment, error) {
	s, err := c.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusCommitment {
		return nil, fmt.Errorf("%w: session %s has not reached the signature phase", ErrPrematureRead, sessionID)
	}

	list := make([]*Commitment, 0, len(s.commitments))
	for _, id := range s.commitmentOrder {
		list = append(list, s.commitments[id])
	}
	return canonicalizeCommitments(list), nil
}

// SubmitSignatureShare records guardianID's Round Two signature share for
// sessionID. The guardian must have previously submitted a Round One
// commitment in this same session.
func (c *Coordinator) SubmitSignatureShare(sessionID string, guardianID int, share *SignatureShare) error {
	s, err := c.getSession(sessionID)
	if err != nil {
		return err
	}
	if share.GuardianID != guardianID {
		return fmt.Errorf("%w: submitter %d, share claims %d", ErrIdentityMismatch, guardianID, share.GuardianID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusSignature {
		return fmt.Errorf("%w: session is in phase %s", ErrWrongPhase, s.status)
	}
	if _, committed := s.commitments[guardianID]; !committed {
		return fmt.Errorf("%w: guardian %d", ErrMissingCommitment, guardianID)
	}
	if _, exists := s.shares[guardianID]; exists {
		return fmt.Errorf("%w: guardian %d already submitted a signature share", ErrDuplicateSubmission, guardianID)
	}

	s.shares[guardianID] = share
	return nil
}

// AggregateSignature combines at least threshold signature shares into a
// final signature, self-verifies it, and moves the session to complete.
// If self-verification fails the session moves to failed and
// ErrAggregationFailure is returned; the caller must start a fresh
// session rather than retry this one.
func (c *Coordinator) AggregateSignature(sessionID string) (*Signature, error) {
	s, err := c.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusSignature {
		return nil, fmt.Errorf("%w: session is in phase %s", ErrWrongPhase, s.status)
	}
	if len(s.shares) < c.threshold {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, len(s.shares), c.threshold)
	}

	commitments := make([]*Commitment, 0, len(s.commitments))
	for _, id := range s.commitmentOrder {
		commitments = append(commitments, s.commitments[id])
	}
	commitments = canonicalizeCommitments(commitments)

	bindingFactors, err := computeBindingFactors(c.suite, s.message, commitments)
	if err != nil {
		return nil, err
	}
	groupCommitment := computeGroupCommitment(c.suite, commitments, bindingFactors)

	z := c.suite.Scalar().Zero()
	for _, id := range s.commitmentOrder {
		share, ok := s.shares[id]
		if !ok {
			continue
		}
		z = c.suite.Scalar().Add(z, share.ZShare)
	}

	signature := &Signature{R: groupCommitment, Z: z, GroupPublicKey: c.groupPublicKey}

	if !Verify(c.suite, signature, s.message) {
		s.status = StatusFailed
		return nil, fmt.Errorf("%w: session %s", ErrAggregationFailure, sessionID)
	}

	s.status = StatusComplete
	return signature, nil
}

// GetSessionStatus returns a stable snapshot of sessionID's progress.
func (c *Coordinator) GetSessionStatus(sessionID string) (*SessionSnapshot, error) {
	s, err := c.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &SessionSnapshot{
		Status:              s.status,
		CommitmentsReceived: len(s.commitments),
		SharesReceived:      len(s.shares),
		ThresholdRequired:   c.threshold,
	}, nil
}

// CleanupSession removes a session's state. It only succeeds once the
// session has reached a terminal status.
func (c *Coordinator) CleanupSession(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	s.mu.Lock()
	status := s.status
	s.mu.Unlock()

	if status != StatusComplete && status != StatusFailed {
		return fmt.Errorf("%w: session %s is still in phase %s", ErrWrongPhase, sessionID, status)
	}

	delete(c.sessions, sessionID)
	return nil
}

// Sweep removes every terminal (complete or failed) session older than
// maxAge, and reports how many it removed. It never touches an active
// session. Callers that want automatic session garbage collection run
// Sweep on a timer; nothing is removed unless a caller asks.
func (c *Coordinator) Sweep(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, s := range c.sessions {
		s.mu.Lock()
		terminal := s.status == StatusComplete || s.status == StatusFailed
		old := s.createdAt.Before(cutoff)
		s.mu.Unlock()

		if terminal && old {
			delete(c.sessions, id)
			removed++
		}
	}

	return removed
}
