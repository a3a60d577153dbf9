package frost

import (
	"fmt"
	"sort"

	"github.com/defiguardian/guardian-core/dkg"
	"go.dedis.ch/kyber/v3"
)

// canonicalizeCommitments returns commitments sorted in ascending order by
// guardian id. Every hash over a commitment list must be computed against
// this canonical ordering, or participants will disagree on the binding
// factors and the group commitment.
func canonicalizeCommitments(commitments []*Commitment) []*Commitment {
	sorted := make([]*Commitment, len(commitments))
	copy(sorted, commitments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GuardianID < sorted[j].GuardianID
	})
	return sorted
}

// encodeCommitmentList serializes an already-canonicalized commitment list
// for inclusion in the binding-factor transcript. The guardian id is
// encoded as a single byte; dkg.Config.Validate enforces the group-size
// bound that makes this lossless.
func encodeCommitmentList(commitments []*Commitment) ([]byte, error) {
	var out []byte
	for _, c := range commitments {
		if c.GuardianID < 0 || c.GuardianID > 255 {
			return nil, fmt.Errorf("guardian id %d does not fit the single-byte encoding", c.GuardianID)
		}
		hidingBytes, err := c.HidingNonceCommitment.MarshalBinary()
		if err != nil {
			return nil, err
		}
		bindingBytes, err := c.BindingNonceCommitment.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, byte(c.GuardianID))
		out = append(out, hidingBytes...)
		out = append(out, bindingBytes...)
	}
	return out, nil
}

// computeBindingFactors derives rho_j = H(j || m || encode(commitments))
// for every guardian in the canonicalized commitment list.
func computeBindingFactors(
	suite dkg.Suite,
	message []byte,
	commitments []*Commitment,
) (map[int]kyber.Scalar, error) {
	encoded, err := encodeCommitmentList(commitments)
	if err != nil {
		return nil, err
	}

	factors := make(map[int]kyber.Scalar, len(commitments))
	for _, c := range commitments {
		factors[c.GuardianID] = hashToScalar(suite, []byte{byte(c.GuardianID)}, message, encoded)
	}
	return factors, nil
}

// computeGroupCommitment computes R = sum_j (D_j + rho_j * E_j) over the
// canonicalized commitment list.
func computeGroupCommitment(
	suite dkg.Suite,
	commitments []*Commitment,
	bindingFactors map[int]kyber.Scalar,
) kyber.Point {
	r := suite.Point().Null()
	for _, c := range commitments {
		rho := bindingFactors[c.GuardianID]
		bindingTerm := suite.Point().Mul(rho, c.BindingNonceCommitment)
		r = suite.Point().Add(r, suite.Point().Add(c.HidingNonceCommitment, bindingTerm))
	}
	return r
}

// computeChallenge computes c = H(R || Y || m).
func computeChallenge(
	suite dkg.Suite,
	groupPublicKey kyber.Point,
	groupCommitment kyber.Point,
	message []byte,
) (kyber.Scalar, error) {
	rBytes, err := groupCommitment.MarshalBinary()
	if err != nil {
		return nil, err
	}
	yBytes, err := groupPublicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return hashToScalar(suite, rBytes, yBytes, message), nil
}

// deriveLagrangeCoefficient computes lambda_i = prod_{j != i} x_j/(x_j - x_i)
// at x = 0, over the evaluation points x_k = k+1 for k in participants.
//
// A duplicate guardian id in participants would otherwise surface as a
// modular-inverse failure; it is detected up front and reported as
// ErrDuplicateParticipant instead.
func deriveLagrangeCoefficient(suite dkg.Suite, guardianID int, participants []int) (kyber.Scalar, error) {
	seen := make(map[int]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, fmt.Errorf("%w: guardian %d appears more than once", ErrDuplicateParticipant, p)
		}
		seen[p] = true
	}

	xi := suite.Scalar().SetInt64(int64(guardianID + 1))
	num := suite.Scalar().One()
	den := suite.Scalar().One()

	for _, p := range participants {
		if p == guardianID {
			continue
		}
		xj := suite.Scalar().SetInt64(int64(p + 1))
		num = suite.Scalar().Mul(num, xj)
		den = suite.Scalar().Mul(den, suite.Scalar().Sub(xj, xi))
	}

	return suite.Scalar().Mul(num, suite.Scalar().Inv(den)), nil
}
