package frost

import (
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/defiguardian/guardian-core/dkg"
	"go.dedis.ch/kyber/v3"
)

// Signer holds one guardian's share of a group signing key and the nonces
// it has generated for in-flight sessions. A Signer is safe for
// concurrent use across sessions but serializes nonce access internally.
type Signer struct {
	suite dkg.Suite

	guardianID     int
	secretShare    kyber.Scalar
	groupPublicKey kyber.Point
	threshold      int

	mu     sync.Mutex
	nonces map[string]*nonceStore
}

// NewSigner creates a Signer bound to a single guardian's key share, as
// produced by dkg.Dealer.Generate. threshold is the minimum number of
// Round One commitments GenerateSignatureShare requires before it will
// derive a signature share, and must match the dkg.Config.Threshold the
// group was generated with.
func NewSigner(suite dkg.Suite, share dkg.GuardianKeyShare, groupPublicKey kyber.Point, threshold int) *Signer {
	return &Signer{
		suite:          suite,
		guardianID:     share.ParticipantID,
		secretShare:    share.SecretShare,
		groupPublicKey: groupPublicKey,
		threshold:      threshold,
		nonces:         make(map[string]*nonceStore),
	}
}

// GuardianID returns the guardian id this Signer was constructed with.
func (s *Signer) GuardianID() int {
	return s.guardianID
}

// GenerateCommitment performs Round One for sessionID: it samples a fresh
// hiding/binding nonce pair, stores it, and returns the corresponding
// public commitment. Calling it twice for the same sessionID fails with
// ErrNonceCollision; nonces are single-use.
func (s *Signer) GenerateCommitment(sessionID string) (*Commitment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nonces[sessionID]; exists {
		return nil, fmt.Errorf("%w: session %s", ErrNonceCollision, sessionID)
	}

	hidingNonce, err := s.sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("hiding nonce generation failed: %w", err)
	}
	bindingNonce, err := s.sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("binding nonce generation failed: %w", err)
	}

	s.nonces[sessionID] = &nonceStore{hidingNonce: hidingNonce, bindingNonce: bindingNonce}

	return &Commitment{
		GuardianID:             s.guardianID,
		HidingNonceCommitment:  s.suite.Point().Mul(hidingNonce, nil),
		BindingNonceCommitment: s.suite.Point().Mul(bindingNonce, nil),
	}, nil
}

func (s *Signer) sampleScalar() (kyber.Scalar, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return s.suite.Scalar().SetBytes(b), nil
}

// GenerateSignatureShare performs Round Two for sessionID: given the
// canonical set of Round One commitments and the message being signed, it
// derives this guardian's signature share z_i and erases the nonces used
// to produce it. A second call for the same sessionID fails with
// ErrNonceMissing.
func (s *Signer) GenerateSignatureShare(
	sessionID string,
	message []byte,
	commitments []*Commitment,
) (*SignatureShare, error) {
	s.mu.Lock()
	nonces, ok := s.nonces[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", ErrNonceMissing, sessionID)
	}

	if len(commitments) < s.threshold {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientCommitments, len(commitments), s.threshold)
	}

	canonical := canonicalizeCommitments(commitments)

	present := false
	participants := make([]int, len(canonical))
	for i, c := range canonical {
		participants[i] = c.GuardianID
		if c.GuardianID == s.guardianID {
			present = true
		}
	}
	if !present {
		return nil, fmt.Errorf("%w: guardian %d", ErrMissingCommitment, s.guardianID)
	}

	bindingFactors, err := computeBindingFactors(s.suite, message, canonical)
	if err != nil {
		return nil, err
	}

	groupCommitment := computeGroupCommitment(s.suite, canonical, bindingFactors)
	challenge, err := computeChallenge(s.suite, s.groupPublicKey, groupCommitment, message)
	if err != nil {
		return nil, err
	}

	lambda, err := deriveLagrangeCoefficient(s.suite, s.guardianID, participants)
	if err != nil {
		return nil, err
	}

	rho := bindingFactors[s.guardianID]

	// z_i = d_i + e_i*rho_i + lambda_i*s_i*c (mod q)
	bindingTerm := s.suite.Scalar().Mul(nonces.bindingNonce, rho)
	secretTerm := s.suite.Scalar().Mul(lambda, s.secretShare)
	secretTerm = s.suite.Scalar().Mul(secretTerm, challenge)

	z := s.suite.Scalar().Add(nonces.hidingNonce, bindingTerm)
	z = s.suite.Scalar().Add(z, secretTerm)

	s.mu.Lock()
	delete(s.nonces, sessionID)
	s.mu.Unlock()

	return &SignatureShare{GuardianID: s.guardianID, ZShare: z}, nil
}

// ClearNonces erases any stored nonce material for sessionID. It is a
// no-op if no nonces are stored, and is the correct way to abandon an
// in-flight signing attempt without leaving reusable nonce material
// sitting in memory.
func (s *Signer) ClearNonces(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nonces, sessionID)
}
