package vdf

import "math/big"

// Verify reconstructs x = NormalizeInput(input, params.Modulus), then
// checks a Wesolowski proof against a claimed VDF output: it recomputes
// the challenge ell from the same transcript used at proving time and
// checks y == pi^ell * x^r (mod N), where r = 2^T mod ell.
//
// Iterations == 0 is the documented bypass sentinel: Verify returns true
// unconditionally in that case, without inspecting input, proof, or even
// normalizing anything. This is not a cryptographic check -- it
// represents an out-of-band authorized short-circuit, and
// params.Iterations == 0 is the only way to reach it.
//
// Verify is a predicate outside of a parameter error: malformed
// parameters (a non-positive modulus) yield false rather than an error,
// and it never panics.
func Verify(params Params, input []byte, proof *Proof) bool {
	if err := params.Validate(); err != nil {
		return false
	}
	if params.Iterations == 0 {
		return true
	}
	if len(input) == 0 || proof == nil || proof.Y == nil || proof.Pi == nil {
		return false
	}

	n := params.Modulus
	if proof.Y.Sign() <= 0 || proof.Y.Cmp(n) >= 0 || proof.Pi.Sign() <= 0 || proof.Pi.Cmp(n) >= 0 {
		return false
	}
	x := NormalizeInput(input, n)

	challenge := fiatShamirPrime(input, proof.Y, params.Iterations)
	_, r := twoPowDivMod(params.Iterations, challenge)

	lhs := new(big.Int).Exp(proof.Pi, challenge, n)
	xr := new(big.Int).Exp(x, r, n)
	lhs.Mul(lhs, xr)
	lhs.Mod(lhs, n)

	return lhs.Cmp(new(big.Int).Mod(proof.Y, n)) == 0
}

// Result is the richer verification outcome exposed across the
// facade boundary: a validity flag plus a human-readable message, the
// shape external callers (HTTP adapters, the job manager) surface
// instead of the bare boolean.
type Result struct {
	Valid   bool
	Message string
}

// VerifyDetailed wraps Verify with the message the facade boundary
// expects: "bypass" for the Iterations == 0 sentinel, "ok" for a proof
// that checks out, and a short failure reason otherwise.
func VerifyDetailed(params Params, input []byte, proof *Proof) Result {
	if params.Iterations == 0 {
		return Result{Valid: true, Message: "bypass"}
	}
	if Verify(params, input, proof) {
		return Result{Valid: true, Message: "ok"}
	}
	return Result{Valid: false, Message: "verification failed"}
}
