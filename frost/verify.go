package frost

import "github.com/defiguardian/guardian-core/dkg"

// Verify checks a FROST signature against a message: z*G = R + c*Y. It is
// a predicate, not a fallible operation: malformed input (nil fields)
// yields false rather than an error, and it never panics.
func Verify(suite dkg.Suite, signature *Signature, message []byte) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	if signature == nil || signature.R == nil || signature.Z == nil || signature.GroupPublicKey == nil {
		return false
	}

	challenge, err := computeChallenge(suite, signature.GroupPublicKey, signature.R, message)
	if err != nil {
		return false
	}

	lhs := suite.Point().Mul(signature.Z, nil)
	rhs := suite.Point().Add(
		signature.R,
		suite.Point().Mul(challenge, signature.GroupPublicKey),
	)

	return lhs.Equal(rhs)
}
