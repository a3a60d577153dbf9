// Package guardiantransport moves a guardian's key share from a dealer to
// that guardian over an untrusted channel: an ephemeral secp256k1 ECDH
// exchange derives a shared AES-256 key, and the share is sealed under it
// with AES-GCM. It has no relationship to the Ed25519 keys the share
// itself protects -- the transport layer's key pair exists only for the
// lifetime of one handoff and is discarded afterward.
package guardiantransport
