// Package verkle provides a mock implementation of a Verkle tree
// accumulator. Real Verkle semantics require vector/polynomial
// commitments (e.g. KZG) over a pairing-friendly curve, which is out of
// scope here; this stub exists only to let the benchmark runner exercise
// the same AccumulatorScheme contract across all five schemes and report
// the literature's expected proof-size characteristics.
package verkle

import (
	"sync"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/log"
)

var logger = log.Default().Module("verkle")

// placeholderRoot is the fixed accumulator value every Scheme reports,
// regardless of state.
var placeholderRoot = []byte("verkle_root_placeholder")

// stubProofSize is the fixed witness size real Verkle proofs are
// expected to approach: nearly constant and very small, independent of
// state size.
const stubProofSize = 200

var noteOnce sync.Once

// Scheme is the Verkle stub. create sets a fixed placeholder
// accumulator, prove_membership returns a fixed blob, verify_membership
// always accepts, and update only keeps state consistent.
type Scheme struct {
	state []accum.Element
}

var _ accum.Scheme = (*Scheme)(nil)

// New constructs a Scheme over elements and logs the one-time mocked
// notice the first time any Verkle scheme is constructed in this
// process.
func New(elements []accum.Element) *Scheme {
	noteOnce.Do(func() {
		logger.Warn("VerkleTree is a mocked placeholder and does not represent real performance")
	})
	s := &Scheme{state: append([]accum.Element(nil), elements...)}
	s.Create()
	return s
}

// Create does nothing: Accumulator always reports the fixed placeholder
// value, whatever the state.
func (s *Scheme) Create() {}

// ProveMembership always returns the fixed 200-byte placeholder proof,
// regardless of whether e is actually present -- matching the stub's
// documented non-semantics.
func (s *Scheme) ProveMembership(e accum.Element) (accum.Proof, bool) {
	return make([]byte, stubProofSize), true
}

// VerifyMembership always accepts.
func (s *Scheme) VerifyMembership(e accum.Element, proof accum.Proof) bool {
	return true
}

// ApplyChange only supports a single Replace, mirroring Merkle's update
// shape; it keeps state consistent and performs no real commitment math.
func (s *Scheme) ApplyChange(op accum.Operation) error {
	if op.Replace == nil {
		return accum.ErrUnsupportedOperation
	}
	for i, e := range s.state {
		if string(e) == string(op.Replace.Old) {
			s.state[i] = append(accum.Element(nil), op.Replace.New...)
			return nil
		}
	}
	return nil
}

// Accumulator returns the fixed placeholder value.
func (s *Scheme) Accumulator() []byte {
	return append([]byte(nil), placeholderRoot...)
}

// State implements accum.Scheme.
func (s *Scheme) State() []accum.Element {
	return append([]accum.Element(nil), s.state...)
}

// ProofSize implements accum.Scheme.
func (s *Scheme) ProofSize() int {
	return stubProofSize
}
