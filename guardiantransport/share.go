package guardiantransport

import (
	"encoding/binary"
	"fmt"

	"github.com/defiguardian/guardian-core/dkg"
)

// EncryptShare seals a guardian's key share for delivery to that
// guardian over an untrusted channel. The recipient recovers it with
// DecryptShare using the same derived shared key.
func EncryptShare(sharedKey [32]byte, share dkg.GuardianKeyShare) (*Box, error) {
	secretBytes, err := share.SecretShare.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal secret share: %w", err)
	}
	publicBytes, err := share.PublicKey.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	var idBytes [4]byte
	binary.BigEndian.PutUint32(idBytes[:], uint32(share.ParticipantID))

	payload := make([]byte, 0, len(idBytes)+len(secretBytes)+len(publicBytes))
	payload = append(payload, idBytes[:]...)
	payload = append(payload, secretBytes...)
	payload = append(payload, publicBytes...)

	return Encrypt(sharedKey, payload)
}

// DecryptShare reverses EncryptShare. suite must be the same ciphersuite
// the share was generated under, so that the scalar and point byte
// widths line up.
func DecryptShare(suite dkg.Suite, sharedKey [32]byte, box *Box) (dkg.GuardianKeyShare, error) {
	payload, err := Decrypt(sharedKey, box)
	if err != nil {
		return dkg.GuardianKeyShare{}, fmt.Errorf("decrypt share: %w", err)
	}
	if len(payload) < 4 {
		return dkg.GuardianKeyShare{}, fmt.Errorf("%w: payload too short", ErrMalformedEnvelope)
	}

	participantID := int(binary.BigEndian.Uint32(payload[:4]))
	remainder := payload[4:]

	if len(remainder)%2 != 0 {
		return dkg.GuardianKeyShare{}, fmt.Errorf("%w: secret/public share of uneven length", ErrMalformedEnvelope)
	}
	half := len(remainder) / 2
	secretBytes, publicBytes := remainder[:half], remainder[half:]

	secretShare := suite.Scalar()
	if err := secretShare.UnmarshalBinary(secretBytes); err != nil {
		return dkg.GuardianKeyShare{}, fmt.Errorf("unmarshal secret share: %w", err)
	}
	publicKey := suite.Point()
	if err := publicKey.UnmarshalBinary(publicBytes); err != nil {
		return dkg.GuardianKeyShare{}, fmt.Errorf("unmarshal public key: %w", err)
	}

	return dkg.GuardianKeyShare{
		ParticipantID: participantID,
		SecretShare:   secretShare,
		PublicKey:     publicKey,
	}, nil
}
