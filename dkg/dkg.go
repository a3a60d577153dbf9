// Package dkg implements a trusted-dealer distributed key generation for
// FROST threshold signatures over curve Ed25519.
//
// A single dealer samples a random polynomial f(x) = a_0 + a_1 x + ... +
// a_{t-1} x^{t-1} over the scalar field and distributes Shamir shares
// s_i = f(i+1) to n guardians, alongside Feldman VSS commitments
// A_j = a_j*G that let any guardian verify its own share without learning
// anyone else's. The dealer itself learns the group secret a_0 for the
// brief moment it exists in memory; this is the documented trade-off of a
// trusted-dealer scheme and is why it is not suitable as a trustless
// ceremony. An MPC-based DKG that removes the dealer is future work and is
// out of scope here.
package dkg

import (
	"crypto/cipher"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/edwards25519"
)

// MaxParticipants bounds the group size at 255. FROST binding-factor
// derivation (package frost) encodes a guardian's participant id in a
// single byte, so no dealer output may be used by a group larger than this.
const MaxParticipants = 255

// Suite is the subset of kyber's Group and Random capabilities this
// package needs. *edwards25519.SuiteEd25519 satisfies it; it is the same
// suite used by the frost package so that shares, commitments, and
// signatures all live in one scalar field.
type Suite interface {
	kyber.Group
	RandomStream() cipher.Stream
}

// NewSuite returns the Ed25519 suite used across the dkg and frost
// packages.
func NewSuite() Suite {
	return edwards25519.NewBlakeSHA256Ed25519()
}

// Config is the (t, n) policy for a key generation ceremony.
type Config struct {
	Threshold         int
	TotalParticipants int
}

// Validate checks the (t, n) invariant 1 <= t <= n.
func (c Config) Validate() error {
	if c.Threshold <= 0 || c.TotalParticipants <= 0 {
		return fmt.Errorf(
			"%w: threshold and totalParticipants must be positive, got threshold=%d totalParticipants=%d",
			ErrConfig, c.Threshold, c.TotalParticipants,
		)
	}
	if c.Threshold > c.TotalParticipants {
		return fmt.Errorf(
			"%w: threshold [%d] exceeds totalParticipants [%d]",
			ErrConfig, c.Threshold, c.TotalParticipants,
		)
	}
	if c.TotalParticipants > MaxParticipants {
		return fmt.Errorf(
			"%w: totalParticipants [%d] exceeds the maximum of %d imposed by "+
				"the single-byte guardian id encoding used in FROST binding factors",
			ErrConfig, c.TotalParticipants, MaxParticipants,
		)
	}
	return nil
}

// GuardianKeyShare is one guardian's slice of the group secret, as
// produced by Dealer.Generate. It is held for the lifetime of the signing
// group and must never be transmitted in clear; package guardiantransport
// offers one way to move it between guardians out-of-band.
type GuardianKeyShare struct {
	ParticipantID int
	SecretShare   kyber.Scalar
	PublicKey     kyber.Point
}

// Output is the result of a key generation ceremony: the group public key,
// every guardian's share, and the VSS commitments needed to verify them.
// VSSCommitments[0] always equals GroupPublicKey.
type Output struct {
	GroupPublicKey kyber.Point
	GuardianShares []GuardianKeyShare
	VSSCommitments []kyber.Point
}

// Dealer produces Shamir/Feldman key shares for a single (t, n) group.
// A Dealer has no state between calls to Generate; it exists only to pin
// the ciphersuite used for share generation.
type Dealer struct {
	suite Suite
}

// NewDealer creates a Dealer using the default Ed25519 ciphersuite.
func NewDealer() *Dealer {
	return &Dealer{suite: NewSuite()}
}

// NewDealerWithSuite creates a Dealer bound to an explicit suite, mainly
// useful for tests that need a deterministic random source.
func NewDealerWithSuite(suite Suite) *Dealer {
	return &Dealer{suite: suite}
}

// Generate runs a complete dealer ceremony for the given (t, n) policy.
// It samples a fresh master secret and degree t-1 polynomial, and returns
// every guardian's share together with the VSS commitments that let
// VerifyShare validate them.
//
// Shares are evaluated at x = i+1, never at x = 0: the constant term of
// the polynomial is the group secret itself, and a share at x = 0 would
// leak it.
func (d *Dealer) Generate(cfg Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coefficients := make([]kyber.Scalar, cfg.Threshold)
	for j := range coefficients {
		coefficients[j] = d.suite.Scalar().Pick(d.suite.RandomStream())
	}

	vssCommitments := make([]kyber.Point, cfg.Threshold)
	for j, a := range coefficients {
		vssCommitments[j] = d.suite.Point().Mul(a, nil)
	}

	guardianShares := make([]GuardianKeyShare, cfg.TotalParticipants)
	for i := 0; i < cfg.TotalParticipants; i++ {
		secretShare := evaluatePolynomial(d.suite, coefficients, i+1)
		guardianShares[i] = GuardianKeyShare{
			ParticipantID: i,
			SecretShare:   secretShare,
			PublicKey:     d.suite.Point().Mul(secretShare, nil),
		}
	}

	return &Output{
		GroupPublicKey: vssCommitments[0],
		GuardianShares: guardianShares,
		VSSCommitments: vssCommitments,
	}, nil
}

// evaluatePolynomial computes f(x) = sum(coefficients[j] * x^j) in the
// suite's scalar field using Horner-free accumulation, matching the
// definition in FROST section 4.2 Polynomials.
func evaluatePolynomial(suite Suite, coefficients []kyber.Scalar, x int) kyber.Scalar {
	result := suite.Scalar().Zero()
	xPower := suite.Scalar().One()
	xScalar := suite.Scalar().SetInt64(int64(x))

	for _, c := range coefficients {
		term := suite.Scalar().Mul(c, xPower)
		result = suite.Scalar().Add(result, term)
		xPower = suite.Scalar().Mul(xPower, xScalar)
	}

	return result
}
