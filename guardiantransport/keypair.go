package guardiantransport

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/hkdf"
)

// KeyPair is an ephemeral secp256k1 key pair used only to derive a shared
// symmetric key for one transport handoff.
type KeyPair struct {
	Private *btcec.PrivateKey
	Public  *btcec.PublicKey
}

// GenerateKeyPair creates a fresh ephemeral key pair. Callers should
// discard it once the handoff it was generated for is complete.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key pair: %w", err)
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// SharedKey derives a 32-byte AES-256 key from an ECDH exchange between
// this pair's private key and a peer's public key. The shared point's
// x-coordinate is the ECDH secret; it is run through HKDF-SHA256 rather
// than used directly, so the derived key is uniformly distributed even
// though the secret itself is a curve coordinate, not random bytes. Both
// sides of a handoff compute the same key without ever transmitting it.
func (k *KeyPair) SharedKey(peer *btcec.PublicKey) [32]byte {
	x, _ := btcec.S256().ScalarMult(peer.X, peer.Y, k.Private.D.Bytes())

	reader := hkdf.New(sha256.New, x.Bytes(), nil, []byte("guardiantransport-ecdh-v1"))

	var key [32]byte
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		panic(fmt.Sprintf("guardiantransport: hkdf expand failed: %v", err))
	}
	return key
}
