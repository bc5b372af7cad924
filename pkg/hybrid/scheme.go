// Package hybrid implements the hybrid accumulator: the state is
// sharded into K segments by hash-mod-K, each segment committed with a
// trapdoored RSA accumulator, and the K segment digests are in turn
// committed to by a top-level Merkle tree.
package hybrid

import (
	"math/big"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/log"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/merkle"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/rsaacc"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// DefaultSegments is the number of RSA shards the top-level Merkle tree
// commits to.
const DefaultSegments = 16

var logger = log.Default().Module("hybrid")

// Scheme is the hybrid accumulator.
type Scheme struct {
	numSegments int
	modulusBits int

	segments []*rsaacc.Trapdoored
	top      *merkle.Tree
}

var _ accum.Scheme = (*Scheme)(nil)

// New partitions elements across numSegments RSA shards by
// SegmentIndex(e) and builds the top-level Merkle tree over the
// segments' accumulator digests.
func New(elements []accum.Element, numSegments, modulusBits int) (*Scheme, error) {
	buckets := make([][]accum.Element, numSegments)
	for _, e := range elements {
		s := xcrypto.SegmentIndex(e, numSegments)
		buckets[s] = append(buckets[s], e)
	}

	segments := make([]*rsaacc.Trapdoored, numSegments)
	for i, bucket := range buckets {
		seg, err := rsaacc.NewTrapdoored(bucket, modulusBits)
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}

	s := &Scheme{
		numSegments: numSegments,
		modulusBits: modulusBits,
		segments:    segments,
	}
	s.Create()
	logger.Debug("hybrid scheme created", "elements", len(elements), "segments", numSegments)
	return s, nil
}

// Create rebuilds the top-level Merkle tree from the K current segment
// accumulator digests. Each segment's own accumulator value is assumed
// already materialized (either from New or a prior ApplyChange).
func (s *Scheme) Create() {
	digests := make([]accum.Element, s.numSegments)
	for i, seg := range s.segments {
		digests[i] = xcrypto.IntToBytes(seg.Value())
	}
	s.top = merkle.New(digests)
}

// segmentFor returns the segment accumulator and index e routes to.
func (s *Scheme) segmentFor(e accum.Element) (int, *rsaacc.Trapdoored) {
	i := xcrypto.SegmentIndex(e, s.numSegments)
	return i, s.segments[i]
}

// Proof is the hybrid scheme's membership proof: a segment witness, the
// top-level Merkle proof binding that segment's digest into the root,
// and the segment's accumulator value itself (needed by a stateless
// verifier to check the witness without access to the prover's state).
type Proof struct {
	SegmentWitness rsaacc.Witness
	TopProof       merkle.Proof
	SegmentAccVal  *big.Int
}

// Size returns the proof's serialized size: the RSA witness plus the
// top-level Merkle proof plus the serialized segment accumulator
// integer.
func (p Proof) Size(witnessSize int) int {
	return witnessSize + p.TopProof.Size() + len(xcrypto.IntToBytes(p.SegmentAccVal))
}

// ProveMembership returns a Proof for e, or (nil, false) if e is not
// present in its segment.
func (s *Scheme) ProveMembership(e accum.Element) (accum.Proof, bool) {
	_, seg := s.segmentFor(e)
	rawWitness, ok := seg.ProveMembership(e)
	if !ok {
		return nil, false
	}
	topProof, ok := s.top.ProveMembership(xcrypto.IntToBytes(seg.Value()))
	if !ok {
		// The segment digest must always be present at its own index;
		// this would indicate Create() was never run after a mutation.
		return nil, false
	}
	return Proof{
		SegmentWitness: rawWitness.(rsaacc.Witness),
		TopProof:       topProof,
		SegmentAccVal:  new(big.Int).Set(seg.Value()),
	}, true
}

// VerifyMembership is stateless with respect to the prover's prime map:
// it recomputes prime(e) via the shared hash-to-prime function and
// checks the witness against proof.SegmentAccVal directly, using only
// the segment's N and g, never the prover's cache.
func (s *Scheme) VerifyMembership(e accum.Element, proof accum.Proof) bool {
	p, ok := proof.(Proof)
	if !ok {
		return false
	}
	idx, seg := s.segmentFor(e)

	digest := xcrypto.IntToBytes(p.SegmentAccVal)
	if !merkle.VerifyMembership(s.top.Root(), accum.Element(digest), p.TopProof) {
		return false
	}
	if p.TopProof.Index != idx {
		return false
	}

	verifier := rsaacc.NewVerifier(seg.Params())
	prime := xcrypto.HashToPrime(e, rsaacc.PrimeBits)
	return verifier.Verify(p.SegmentAccVal, prime, p.SegmentWitness)
}

// ApplyChange buckets additions and deletions by segment, applies each
// affected segment's batched update, and rebuilds the top-level Merkle
// tree from the K current segment digests. K is small (default 16), so
// a rebuild rather than a point-update is the right trade-off.
func (s *Scheme) ApplyChange(op accum.Operation) error {
	if op.Batch == nil {
		return accum.ErrUnsupportedOperation
	}

	addBuckets := make([][]accum.Element, s.numSegments)
	for _, e := range op.Batch.Add {
		i := xcrypto.SegmentIndex(e, s.numSegments)
		addBuckets[i] = append(addBuckets[i], e)
	}
	delBuckets := make([][]accum.Element, s.numSegments)
	for _, e := range op.Batch.Del {
		i := xcrypto.SegmentIndex(e, s.numSegments)
		delBuckets[i] = append(delBuckets[i], e)
	}

	for i, seg := range s.segments {
		if len(addBuckets[i]) == 0 && len(delBuckets[i]) == 0 {
			continue
		}
		if err := seg.ApplyChange(accum.ApplyBatch(addBuckets[i], delBuckets[i])); err != nil {
			return err
		}
	}

	s.Create()
	return nil
}

// Accumulator implements accum.Scheme, returning the top-level root.
func (s *Scheme) Accumulator() []byte {
	root := s.top.Root()
	return root[:]
}

// State implements accum.Scheme, flattening all segments' elements.
func (s *Scheme) State() []accum.Element {
	var out []accum.Element
	for _, seg := range s.segments {
		out = append(out, seg.State()...)
	}
	return out
}

// ProofSize implements accum.Scheme.
func (s *Scheme) ProofSize() int {
	witnessSize := s.segments[0].ProofSize()
	return witnessSize + s.top.Depth()*xcrypto.HashSize + s.segmentValueSize()
}

func (s *Scheme) segmentValueSize() int {
	max := 0
	for _, seg := range s.segments {
		if n := len(xcrypto.IntToBytes(seg.Value())); n > max {
			max = n
		}
	}
	return max
}
