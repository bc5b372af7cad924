package merkle

import (
	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// Scheme adapts Tree to the accum.Scheme contract. Tree itself exposes a
// concrete, typed API (Proof instead of accum.Proof) for direct use and
// for embedding in Hybrid; Scheme is the thin wrapper the benchmark
// runner drives polymorphically alongside the RSA and Verkle schemes.
type Scheme struct {
	*Tree
}

var _ accum.Scheme = (*Scheme)(nil)

// NewScheme constructs a Merkle-backed accum.Scheme over elements.
func NewScheme(elements []accum.Element) *Scheme {
	return &Scheme{Tree: New(elements)}
}

// ProveMembership implements accum.Scheme.
func (s *Scheme) ProveMembership(e accum.Element) (accum.Proof, bool) {
	proof, ok := s.Tree.ProveMembership(e)
	if !ok {
		return nil, false
	}
	return proof, true
}

// VerifyMembership implements accum.Scheme.
func (s *Scheme) VerifyMembership(e accum.Element, proof accum.Proof) bool {
	p, ok := proof.(Proof)
	if !ok {
		return false
	}
	return s.Tree.VerifyMembership(e, p)
}

// Accumulator implements accum.Scheme, returning the root's bytes.
func (s *Scheme) Accumulator() []byte {
	root := s.Tree.Root()
	return root[:]
}

// State implements accum.Scheme.
func (s *Scheme) State() []accum.Element {
	return s.Tree.Elements()
}

// ProofSize implements accum.Scheme: depth digests at HashSize bytes
// each, per the computed (not placeholder) proof-size requirement.
func (s *Scheme) ProofSize() int {
	return s.Tree.Depth() * xcrypto.HashSize
}
