package vdf

import (
	"fmt"
	"math/big"
)

// Proof is a Wesolowski proof of a VDF evaluation: the claimed output y
// and the proof element pi, both residues mod N.
type Proof struct {
	Y  *big.Int
	Pi *big.Int
}

// ZeroProof returns the bypass sentinel proof: output y = 0, proof
// element pi = 0 (standing in for the empty proof string a param-free
// bypass carries). It is not a claim about any particular x -- Verify
// treats Iterations == 0 as an unconditional bypass and never checks y
// or pi against x for that case, exactly as an out-of-band authorized
// short-circuit that never ran the delay should.
func ZeroProof() *Proof {
	return &Proof{Y: big.NewInt(0), Pi: big.NewInt(0)}
}

func modulusByteLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// Bytes encodes the proof as two fixed-width big-endian integers, each
// sized to modulus's byte length. A fixed width (rather than a
// length-prefixed encoding) is what lets an on-chain verifier slice y and
// pi out of the blob without parsing a length field.
func (p *Proof) Bytes(modulus *big.Int) ([]byte, error) {
	if p.Y == nil || p.Pi == nil {
		return nil, fmt.Errorf("%w: proof has nil fields", ErrParams)
	}
	width := modulusByteLen(modulus)
	if p.Y.BitLen() > width*8 || p.Pi.BitLen() > width*8 {
		return nil, fmt.Errorf("%w: proof element wider than the modulus", ErrParams)
	}

	out := make([]byte, 2*width)
	p.Y.FillBytes(out[:width])
	p.Pi.FillBytes(out[width:])
	return out, nil
}
