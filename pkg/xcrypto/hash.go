// Package xcrypto provides the deterministic hashing, integer-encoding, and
// hash-to-prime primitives shared by every accumulator scheme: SHA-256
// element hashing, big-endian integer<->byte conversion, a seeded
// hash-to-prime mapping, and a balanced product tree for multiplying large
// sets of integers.
package xcrypto

import (
	"crypto/sha256"
	"math/big"
)

// HashSize is the digest size of Hash, in bytes.
const HashSize = sha256.Size

// Hash computes the SHA-256 digest of the concatenation of data.
func Hash(data ...[]byte) [HashSize]byte {
	h := sha256.New()
	for _, b := range data {
		h.Write(b)
	}
	var out [HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// BytesToInt decodes a big-endian byte slice into an integer. The empty
// slice decodes to zero.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes encodes i as a minimal-length big-endian byte slice. Zero
// encodes to the empty slice.
func IntToBytes(i *big.Int) []byte {
	if i.Sign() == 0 {
		return []byte{}
	}
	return i.Bytes()
}
