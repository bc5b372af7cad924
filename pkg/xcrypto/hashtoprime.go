package xcrypto

import (
	"encoding/binary"
	"math/big"
	"math/rand"
)

// probablePrimeRounds controls the Miller-Rabin confidence used when
// searching for a prime candidate. 20 rounds gives a false-positive
// probability below 2^-40, ample for a benchmarking harness that is
// explicitly not a production trusted-setup (spec non-goal: no strong
// hash-to-prime is required, only a deterministic one).
const probablePrimeRounds = 20

// HashToPrime deterministically maps element to a prime of exactly bitLen
// bits. The same (element, bitLen) pair always yields the same prime
// within a process and across process restarts: the candidate search is
// driven by a math/rand source seeded from the first 8 bytes of
// Hash(element), so the sequence of candidates drawn is fully determined
// by the element's digest rather than by wall-clock entropy.
//
// This is intentionally NOT cryptographically strong hash-to-prime (the
// seed derivation leaks structure an adversary could exploit); spec
// non-goals accept that trade-off for a benchmarking accumulator.
func HashToPrime(element []byte, bitLen int) *big.Int {
	h := Hash(element)
	seed := int64(binary.BigEndian.Uint64(h[:8]))
	rng := rand.New(rand.NewSource(seed))

	numBytes := (bitLen + 7) / 8
	buf := make([]byte, numBytes)
	for {
		if _, err := rng.Read(buf); err != nil {
			panic("xcrypto: hash-to-prime rng read failed: " + err.Error())
		}
		candidate := new(big.Int).SetBytes(buf)
		// Force the candidate to exactly bitLen bits and odd, as required
		// for it to be a prime of that size.
		candidate.SetBit(candidate, bitLen-1, 1)
		candidate.SetBit(candidate, 0, 1)
		if candidate.ProbablyPrime(probablePrimeRounds) {
			return candidate
		}
	}
}
