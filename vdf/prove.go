package vdf

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"
)

// Prove normalizes input into x = NormalizeInput(input, params.Modulus),
// then sequentially squares x modulo params.Modulus params.Iterations
// times to compute y = x^(2^T) mod N, and derives a Wesolowski proof
// that lets Verify check the result without repeating the squaring.
//
// The squaring loop checks ctx for cancellation once every
// params.yieldInterval() iterations rather than every iteration:
// checking a context that often would cost more than the multiplication
// itself. Iterations == 0 is a documented bypass -- Prove returns the
// sentinel ZeroProof() immediately without looking at ctx, or even
// normalizing input, at all.
func Prove(ctx context.Context, params Params, input []byte) (*Proof, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: input must not be empty", ErrParams)
	}

	if params.Iterations == 0 {
		return ZeroProof(), nil
	}

	n := params.Modulus
	x := NormalizeInput(input, n)
	y := new(big.Int).Set(x)
	interval := uint64(params.yieldInterval())

	for i := uint64(0); i < params.Iterations; i++ {
		y.Mul(y, y)
		y.Mod(y, n)

		if (i+1)%interval == 0 {
			if params.OnProgress != nil {
				params.OnProgress(i+1, params.Iterations)
			}
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
			default:
			}
		}
	}

	challenge := fiatShamirPrime(input, y, params.Iterations)
	q, _ := twoPowDivMod(params.Iterations, challenge)
	pi := new(big.Int).Exp(x, q, n)

	return &Proof{Y: y, Pi: pi}, nil
}

// fiatShamirPrime derives the Wesolowski challenge ell from the
// transcript (input, y, T): SHA-256 of input concatenated with y's
// big-endian bytes and T's decimal ASCII representation, truncated to
// 128 bits, with the low bit forced to 1 so the result is odd. Prover
// and verifier must hash the identical transcript, so this is keyed on
// the raw challenge input rather than the normalized x -- a verifier
// that only knows input and y (not x, which it has to recompute) still
// has to be able to reproduce this value byte-for-byte.
//
// This package does not run a primality test on ell -- the documented
// simplification trades a vanishingly small soundness gap (a
// Fiat-Shamir-derived 128-bit odd integer is prime with overwhelming
// probability, and a verifier catches a wrong proof regardless) for never
// needing arbitrary-precision primality testing on this path.
func fiatShamirPrime(input []byte, y *big.Int, iterations uint64) *big.Int {
	h := sha256.New()
	h.Write(input)
	h.Write(y.Bytes())
	h.Write([]byte(strconv.FormatUint(iterations, 10)))
	digest := h.Sum(nil)

	challenge := new(big.Int).SetBytes(digest[:16])
	challenge.SetBit(challenge, 0, 1)
	return challenge
}

// twoPowDivMod computes q = floor(2^iterations / ell) and
// r = 2^iterations mod ell without ever materializing 2^iterations,
// which is infeasible for the values of T a VDF is meant to enforce. It
// walks the exponent one bit at a time using the long-division identity
// 2^(k+1) = 2 * 2^k, doubling the running (quotient, remainder) pair and
// reducing mod ell at each step.
func twoPowDivMod(iterations uint64, ell *big.Int) (q, r *big.Int) {
	q = big.NewInt(0)
	r = big.NewInt(1)
	two := big.NewInt(2)
	one := big.NewInt(1)

	for i := uint64(0); i < iterations; i++ {
		r.Mul(r, two)
		q.Mul(q, two)
		if r.Cmp(ell) >= 0 {
			r.Sub(r, ell)
			q.Add(q, one)
		}
	}

	return q, r
}
