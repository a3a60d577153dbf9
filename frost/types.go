package frost

import "go.dedis.ch/kyber/v3"

// Commitment is a guardian's Round One output: public commitments to a
// hiding and a binding nonce.
type Commitment struct {
	GuardianID             int
	HidingNonceCommitment  kyber.Point
	BindingNonceCommitment kyber.Point
}

// SignatureShare is a guardian's Round Two contribution toward a group
// signature.
type SignatureShare struct {
	GuardianID int
	ZShare     kyber.Scalar
}

// Signature is a completed FROST signature: z*G = R + c*Y.
type Signature struct {
	R              kyber.Point
	Z              kyber.Scalar
	GroupPublicKey kyber.Point
}

// Bytes returns the signature's fixed wire encoding: the group commitment
// R followed by the scalar z, each 32 bytes for Ed25519.
func (s *Signature) Bytes() ([]byte, error) {
	rBytes, err := s.R.MarshalBinary()
	if err != nil {
		return nil, err
	}
	zBytes, err := s.Z.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(rBytes)+len(zBytes))
	out = append(out, rBytes...)
	out = append(out, zBytes...)
	return out, nil
}

// nonceStore holds one guardian's single-use Round One nonce material for
// a single session. It is deleted the moment GenerateSignatureShare
// consumes it.
type nonceStore struct {
	hidingNonce  kyber.Scalar
	bindingNonce kyber.Scalar
}
