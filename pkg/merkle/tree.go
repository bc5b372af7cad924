// Package merkle implements a binary Merkle hash tree with indexed
// point-updates: leaves are hashed and padded to the next power of two
// with a fixed zero-leaf, and membership proofs carry the leaf index
// explicitly rather than relying on the prover's index map.
package merkle

import (
	"errors"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/log"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// ErrNotFound names the condition of an element that cannot be resolved
// to a tree position. No function in this package returns it: an absent
// element surfaces as ok=false from ProveMembership and as a no-op from
// Update.
var ErrNotFound = errors.New("merkle: element not found")

var logger = log.Default().Module("merkle")

// zeroLeaf is the fixed padding leaf used to round the tree up to the
// next power of two. Padded positions are never inserted into
// leafToIndex and never participate in membership proofs.
var zeroLeaf = [xcrypto.HashSize]byte{}

// Tree is a binary Merkle tree over a sequence of elements.
type Tree struct {
	elements []accum.Element

	// levels[0] is the leaf level (including zero-padding); levels[len-1]
	// is the single-digest root level.
	levels [][][xcrypto.HashSize]byte

	// leafToIndex maps a real (non-padded) leaf digest to its original
	// position. Used for O(1) proof generation; also doubles as the
	// reverse lookup for the real elements' own positions.
	leafToIndex map[[xcrypto.HashSize]byte]int
}

// New constructs a Tree over elements and calls Create, so the returned
// tree already holds its root.
func New(elements []accum.Element) *Tree {
	t := &Tree{elements: append([]accum.Element(nil), elements...)}
	t.Create()
	return t
}

// Create (re)builds the tree from the current elements. An empty state
// commits to Hash of the empty byte string rather than a padded
// zero-leaf tree, matching the convention that an accumulator over no
// elements is the hash of nothing.
func (t *Tree) Create() {
	n := len(t.elements)
	if n == 0 {
		t.leafToIndex = map[[xcrypto.HashSize]byte]int{}
		t.levels = [][][xcrypto.HashSize]byte{{xcrypto.Hash([]byte{})}}
		logger.Debug("tree created", "elements", 0, "padded_size", 0, "depth", 0)
		return
	}

	size := nextPowerOfTwo(n)

	leaves := make([][xcrypto.HashSize]byte, size)
	index := make(map[[xcrypto.HashSize]byte]int, n)
	for i, e := range t.elements {
		d := xcrypto.Hash(e)
		leaves[i] = d
		index[d] = i
	}
	for i := n; i < size; i++ {
		leaves[i] = zeroLeaf
	}

	t.leafToIndex = index
	t.levels = buildLevels(leaves)
	logger.Debug("tree created", "elements", n, "padded_size", size, "depth", len(t.levels)-1)
}

// buildLevels computes every level of the tree bottom-up from the leaf
// level, returning levels[0]=leaves ... levels[depth]=root.
func buildLevels(leaves [][xcrypto.HashSize]byte) [][][xcrypto.HashSize]byte {
	levels := make([][][xcrypto.HashSize]byte, 0)
	levels = append(levels, leaves)
	cur := leaves
	for len(cur) > 1 {
		next := make([][xcrypto.HashSize]byte, len(cur)/2)
		for i := range next {
			next[i] = xcrypto.Hash(cur[2*i][:], cur[2*i+1][:])
		}
		levels = append(levels, next)
		cur = next
	}
	return levels
}

// Root returns the current 32-byte commitment.
func (t *Tree) Root() [xcrypto.HashSize]byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Depth returns the number of levels above the leaves.
func (t *Tree) Depth() int {
	return len(t.levels) - 1
}

// Elements returns the current element set in leaf-index order.
func (t *Tree) Elements() []accum.Element {
	return append([]accum.Element(nil), t.elements...)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
