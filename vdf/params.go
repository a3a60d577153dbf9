package vdf

import (
	"fmt"
	"math/big"
)

const defaultModulusHex = "fd81c92475816f229486dd3be4a1c4e87006a3ba55a18028bd3904609e854b4" +
	"7959748cf940fc33b4e23ef86e38257c61b29d17b55d8607ee3bcebb5c5e357" +
	"4a6784a74065f058ff5ef72a775db183424b5409803ab473405e804a025a40e" +
	"e6b0b3f2faeb798f13d0d1f98ab5e38f91528b05b834476f3446200e422f2fb" +
	"5a704dc9ce29b9fcfa30c7d873f4802baa6ef66836ce121fa0ac8423de17b69" +
	"3d7683bcef2bc0f80a05bec99bf0c0c9e9d85e53381a0e76e94faf980797593" +
	"bb342d644d9bdebebfa415de38f58e537a1faba2efadb160578ef7cf5922484" +
	"ba9353db9c39d22ac8cc292662d964a6053452b61a97eaae03e0bd5f946a3a5" +
	"84f54939"

// DefaultModulus is a locally generated 2048-bit RSA modulus: the product
// of two independently sampled, probabilistically-prime (Miller-Rabin)
// 1024-bit integers. The factors were discarded once the product was
// computed. It exists so tests and local experimentation have a concrete
// N to run against without standing up a trusted-setup ceremony of their
// own.
//
// It is NOT a vetted deployment constant. A production deployment must
// supply its own Params.Modulus, ideally one produced by an established
// multi-party RSA UFO ceremony where no participant retains the
// factorization.
var DefaultModulus = mustParseModulus(defaultModulusHex)

func mustParseModulus(hexDigits string) *big.Int {
	n, ok := new(big.Int).SetString(hexDigits, 16)
	if !ok {
		panic("vdf: malformed default modulus constant")
	}
	return n
}

// DefaultYieldInterval is the number of sequential squarings the prover
// performs between checks for cancellation.
const DefaultYieldInterval = 10000

// Params configures one VDF evaluation.
type Params struct {
	// Modulus is N, defining the group Z_N* the VDF is evaluated over.
	Modulus *big.Int

	// Iterations is T, the number of sequential squarings. T == 0 is a
	// documented bypass producing the sentinel proof ZeroProof().
	Iterations uint64

	// YieldInterval bounds how many squarings Prove performs between
	// checks of its context for cancellation. Zero means
	// DefaultYieldInterval.
	YieldInterval int

	// OnProgress, if set, is invoked with the running squaring count
	// every YieldInterval iterations -- the same cadence used for the
	// cancellation check. It is called synchronously from the squaring
	// loop and must not block.
	OnProgress func(done, total uint64)
}

// Validate checks that Params describes a usable VDF instance.
func (p Params) Validate() error {
	if p.Modulus == nil || p.Modulus.Sign() <= 0 {
		return fmt.Errorf("%w: modulus must be a positive integer", ErrParams)
	}
	if p.YieldInterval < 0 {
		return fmt.Errorf("%w: yield interval must not be negative", ErrParams)
	}
	return nil
}

func (p Params) yieldInterval() int {
	if p.YieldInterval <= 0 {
		return DefaultYieldInterval
	}
	return p.YieldInterval
}
