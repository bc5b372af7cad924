// Package rsaacc implements the RSA accumulator family: a trapdoor-free
// variant that recomputes the commitment from scratch on every update,
// and a trapdoored variant that updates incrementally via modular
// inverses mod phi(N).
package rsaacc

import (
	"crypto/rand"
	"math/big"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/log"
)

var logger = log.Default().Module("rsaacc")

// defaultBase is the accumulator's generator g. 3 is the value used
// throughout the reference scheme; any element of high order in
// (Z/NZ)* works equally well for a group of unknown order.
const defaultBase = 3

// Params holds the RSA accumulator's trusted-setup output: modulus N,
// its Euler totient (the trapdoor), and generator g. RetainTrapdoor
// gates whether Phi is populated at all -- in production this trapdoor
// would be discarded immediately after setup; the benchmark retains it
// behind this explicit flag so the trapdoor-free accumulator can
// legitimately claim it never consults phi(N).
type Params struct {
	N             *big.Int
	Phi           *big.Int
	G             *big.Int
	RetainTrapdoor bool
}

// Setup generates a fresh RSA modulus of modulusBits total bits (two
// primes of modulusBits/2 bits each, retried until distinct) and returns
// the resulting Params. retainTrapdoor controls whether Phi is computed
// and kept; a caller that only needs the trapdoor-free accumulator can
// pass false to avoid retaining sensitive material it will never use.
func Setup(modulusBits int, retainTrapdoor bool) (Params, error) {
	primeBits := modulusBits / 2
	var p, q *big.Int
	var err error
	for {
		p, err = rand.Prime(rand.Reader, primeBits)
		if err != nil {
			return Params{}, err
		}
		q, err = rand.Prime(rand.Reader, primeBits)
		if err != nil {
			return Params{}, err
		}
		if p.Cmp(q) != 0 {
			break
		}
		logger.Warn("setup drew equal primes, retrying")
	}

	n := new(big.Int).Mul(p, q)
	params := Params{
		N:              n,
		G:              big.NewInt(defaultBase),
		RetainTrapdoor: retainTrapdoor,
	}
	if retainTrapdoor {
		pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
		qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
		params.Phi = new(big.Int).Mul(pMinus1, qMinus1)
	}
	logger.Debug("rsa setup complete", "modulus_bits", n.BitLen(), "retain_trapdoor", retainTrapdoor)
	return params, nil
}

// WitnessSize returns the serialized size, in bytes, of a single RSA
// witness under this modulus -- the computed (not placeholder)
// proof-size contract.
func (p Params) WitnessSize() int {
	return (p.N.BitLen() + 7) / 8
}
