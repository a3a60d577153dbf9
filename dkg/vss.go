package dkg

import "go.dedis.ch/kyber/v3"

// VerifyShare validates a guardian's secret share against the dealer's VSS
// commitments. It returns true iff
//
//	share.SecretShare * G = sum_{j=0}^{t-1} (i+1)^j * commitments[j]
//
// VerifyShare is a predicate, not a fallible operation: any malformed
// input (nil scalar or point, empty commitment list) or arithmetic
// mismatch yields false. It never panics and never returns an error.
func VerifyShare(suite Suite, share GuardianKeyShare, commitments []kyber.Point) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	if share.SecretShare == nil || len(commitments) == 0 {
		return false
	}
	for _, c := range commitments {
		if c == nil {
			return false
		}
	}

	x := suite.Scalar().SetInt64(int64(share.ParticipantID + 1))
	xPower := suite.Scalar().One()

	reconstructed := suite.Point().Null()
	for _, a := range commitments {
		reconstructed = suite.Point().Add(reconstructed, suite.Point().Mul(xPower, a))
		xPower = suite.Scalar().Mul(xPower, x)
	}

	actual := suite.Point().Mul(share.SecretShare, nil)

	return actual.Equal(reconstructed)
}
