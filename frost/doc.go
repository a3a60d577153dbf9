// Package frost implements the two-round FROST threshold Schnorr signing
// protocol over curve Ed25519:
//
//   - Signer performs per-guardian duties: generating Round One nonce
//     commitments and deriving Round Two signature shares.
//   - Coordinator drives the session state machine that collects
//     commitments and shares from a quorum of Signers and aggregates them
//     into a signature, self-verifying before returning it.
//
// A single hash construction is used for both the binding factor and the
// challenge; see hashToScalar.
package frost
