package frost

import (
	"crypto/sha512"

	"github.com/defiguardian/guardian-core/dkg"
	"go.dedis.ch/kyber/v3"
)

// hashToScalar is the single hash construction this package uses for both
// the binding factor rho_i and the signature challenge c: SHA-512 of the
// concatenated inputs, with the digest's first 32 bytes interpreted as
// scalar material and reduced modulo the curve order by Scalar.SetBytes.
// There is no separate domain-tagged hash per role.
func hashToScalar(suite dkg.Suite, parts ...[]byte) kyber.Scalar {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)
	return suite.Scalar().SetBytes(digest[:32])
}
