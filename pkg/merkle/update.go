package merkle

import (
	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// ApplyChange replaces op.Replace.Old with op.Replace.New at Old's
// current leaf index. A Batch operation is not supported by Merkle and
// returns accum.ErrUnsupportedOperation. An absent Old is a silent no-op,
// per the absent-element error policy.
func (t *Tree) ApplyChange(op accum.Operation) error {
	if op.Replace == nil {
		return accum.ErrUnsupportedOperation
	}
	t.Update(op.Replace.Old, op.Replace.New)
	return nil
}

// Update replaces old with new at old's current index, recomputing only
// the path from that leaf to the root. It resolves the index via
// leafToIndex (O(1)) rather than scanning the element slice, and stops
// walking upward as soon as a recomputed parent equals its previous
// value. If old is not present, Update is a no-op.
func (t *Tree) Update(old, new accum.Element) {
	oldDigest := xcrypto.Hash(old)
	i, ok := t.leafToIndex[oldDigest]
	if !ok {
		return
	}

	newDigest := xcrypto.Hash(new)
	t.elements[i] = append(accum.Element(nil), new...)
	delete(t.leafToIndex, oldDigest)
	t.leafToIndex[newDigest] = i

	t.levels[0][i] = newDigest
	idx := i
	for level := 0; level < t.Depth(); level++ {
		parentLevel := level + 1
		parentIdx := idx / 2
		left, right := 2*parentIdx, 2*parentIdx+1
		recomputed := xcrypto.Hash(t.levels[level][left][:], t.levels[level][right][:])
		if recomputed == t.levels[parentLevel][parentIdx] {
			break
		}
		t.levels[parentLevel][parentIdx] = recomputed
		idx = parentIdx
	}
}
