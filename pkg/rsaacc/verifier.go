package rsaacc

import "math/big"

// Verifier checks RSA witnesses against an externally supplied
// accumulator value, using only N and G -- never a prover's prime map.
// Hybrid's top-level verification uses this to check a segment witness
// against the segment accumulator value carried in the proof itself,
// recomputing the element's prime via the shared hash-to-prime function
// rather than trusting the prover's cache.
type Verifier struct {
	N *big.Int
	G *big.Int
}

// NewVerifier builds a stateless Verifier from a scheme's public
// parameters.
func NewVerifier(params Params) Verifier {
	return Verifier{N: params.N, G: params.G}
}

// Verify accepts iff witness^prime == value (mod N).
func (v Verifier) Verify(value *big.Int, prime *big.Int, witness Witness) bool {
	got := new(big.Int).Exp(witness.W, prime, v.N)
	return got.Cmp(value) == 0
}
