package vdf

import (
	"crypto/sha256"
	"math/big"
	"time"
)

// VDFChallenge is a request to evaluate the VDF over Input. Input is an
// opaque byte string -- typically the transaction payload a guardian
// flagged for delay -- and is never evaluated directly: Prove and Verify
// both reduce it into the group via NormalizeInput before the delay
// function runs, so a prover and a verifier that agree on Input and the
// modulus always agree on the starting point x.
type VDFChallenge struct {
	Input      []byte
	Timestamp  time.Time
	Iterations uint64
	Flagged    bool
}

// NormalizeInput reduces input into Z_N* by SHA-256 hashing it and
// taking the digest modulo n. It is the mandatory first step of both
// Prove and Verify: neither operates on input bytes directly.
func NormalizeInput(input []byte, n *big.Int) *big.Int {
	digest := sha256.Sum256(input)
	return new(big.Int).Mod(new(big.Int).SetBytes(digest[:]), n)
}
