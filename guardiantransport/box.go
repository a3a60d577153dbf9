package guardiantransport

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// Box is an authenticated, symmetrically encrypted envelope.
type Box struct {
	Nonce      []byte
	Ciphertext []byte
}

// Encrypt seals plaintext under sharedKey with AES-256-GCM, using a fresh
// random nonce.
func Encrypt(sharedKey [32]byte, plaintext []byte) (*Box, error) {
	gcm, err := newGCM(sharedKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return &Box{
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Decrypt opens a Box sealed by Encrypt under the same sharedKey. It
// fails if the box was tampered with, or sealed under a different key.
func Decrypt(sharedKey [32]byte, box *Box) ([]byte, error) {
	gcm, err := newGCM(sharedKey)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, box.Nonce, box.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open box: %w", err)
	}
	return plaintext, nil
}

func newGCM(sharedKey [32]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(sharedKey[:])
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}
