// Package vdf implements a Wesolowski verifiable delay function over the
// RSA group Z_N*: Prove performs T sequential modular squarings to
// compute y = x^(2^T) mod N and attaches a succinct proof that lets
// Verify check the result in time independent of T. Evaluation is
// inherently sequential; verification is cheap.
package vdf
