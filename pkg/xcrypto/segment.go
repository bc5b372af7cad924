package xcrypto

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// SegmentIndex deterministically routes element into one of numSegments
// buckets. It uses SHA3-256 rather than the SHA-256 used by Hash and
// HashToPrime so that "which shard an element belongs to" is derived from
// a hash family independent of "what prime represents it" or "what digest
// commits it" — a routing collision and a commitment collision are then
// governed by unrelated hash functions.
func SegmentIndex(element []byte, numSegments int) int {
	if numSegments <= 0 {
		panic("xcrypto: numSegments must be positive")
	}
	digest := sha3.Sum256(element)
	v := new(uint256.Int).SetBytes(digest[:])
	mod := uint256.NewInt(uint64(numSegments))
	v.Mod(v, mod)
	return int(v.Uint64())
}
