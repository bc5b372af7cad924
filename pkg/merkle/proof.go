package merkle

import (
	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// Proof is a Merkle membership proof: the ordered sibling digests from
// the leaf up to the root, together with the leaf index the proof was
// generated against. Carrying Index explicitly means VerifyMembership
// never needs a prover-side index map — the index travels with the
// proof, as a real deployment requires.
type Proof struct {
	Index    int
	Siblings [][xcrypto.HashSize]byte
}

// Size returns the proof's serialized size in bytes: one digest per
// level of depth.
func (p Proof) Size() int {
	return len(p.Siblings) * xcrypto.HashSize
}

// ProveMembership returns a Proof for e, or (Proof{}, false) if e is not
// present in the tree.
func (t *Tree) ProveMembership(e accum.Element) (Proof, bool) {
	digest := xcrypto.Hash(e)
	i, ok := t.leafToIndex[digest]
	if !ok {
		return Proof{}, false
	}
	return t.proveIndex(i), true
}

func (t *Tree) proveIndex(i int) Proof {
	depth := t.Depth()
	siblings := make([][xcrypto.HashSize]byte, depth)
	idx := i
	for level := 0; level < depth; level++ {
		sibling := idx ^ 1
		siblings[level] = t.levels[level][sibling]
		idx /= 2
	}
	return Proof{Index: i, Siblings: siblings}
}

// VerifyMembership checks that e, combined with proof, recomputes to
// root. It does not consult any tree state: the leaf index comes from
// proof.Index, matching a real verifier that has no access to the
// prover's index map.
func VerifyMembership(root [xcrypto.HashSize]byte, e accum.Element, proof Proof) bool {
	digest := xcrypto.Hash(e)
	idx := proof.Index
	for _, sibling := range proof.Siblings {
		if idx%2 == 0 {
			digest = xcrypto.Hash(digest[:], sibling[:])
		} else {
			digest = xcrypto.Hash(sibling[:], digest[:])
		}
		idx /= 2
	}
	return digest == root
}

// VerifyMembership is the method form, checking proof against the
// tree's current root. Present for convenience in tests and single-scheme
// callers; the standalone function above is what a stateless verifier
// (e.g. Hybrid's top level) uses.
func (t *Tree) VerifyMembership(e accum.Element, proof Proof) bool {
	return VerifyMembership(t.Root(), e, proof)
}
