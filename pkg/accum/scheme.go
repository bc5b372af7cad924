// Package accum defines the contract shared by every accumulator scheme
// (Merkle, the two RSA variants, Hybrid, and the Verkle stub) and the
// external collaborators — state generation and the change-operation
// variant — that sit outside the core schemes.
package accum

import "crypto/rand"

// Element is an opaque member of the committed set, canonically 32 bytes
// but not required to be.
type Element []byte

// Proof is scheme-specific membership evidence. Each scheme defines its
// own concrete proof type; callers type-assert based on which scheme
// produced it.
type Proof any

// Scheme is the contract every accumulator implementation satisfies. A
// single ApplyChange entry point accepts a tagged Operation, rather than
// exposing separate single-element and batched update methods: a scheme
// that only supports one shape returns ErrUnsupportedOperation for the
// other.
type Scheme interface {
	// Create materializes Accumulator() from the current state.
	Create()

	// ProveMembership returns a proof for e, or (nil, false) if e is not
	// present in the current state.
	ProveMembership(e Element) (Proof, bool)

	// VerifyMembership checks proof against the scheme's current
	// accumulator value.
	VerifyMembership(e Element, proof Proof) bool

	// ApplyChange mutates state and the accumulator according to op.
	ApplyChange(op Operation) error

	// Accumulator returns the current commitment value's canonical byte
	// encoding, for reporting and cross-scheme comparison.
	Accumulator() []byte

	// State returns the current set of elements, in the scheme's
	// internal order.
	State() []Element

	// ProofSize returns the serialized size, in bytes, of a proof
	// produced by ProveMembership for the current accumulator
	// parameters.
	ProofSize() int
}

// Operation is a tagged variant of the two update shapes the schemes
// support: a single Replace (Merkle, Verkle) or a Batch of additions and
// deletions (the RSA family, Hybrid). Exactly one of the embedded
// pointers is non-nil.
type Operation struct {
	Replace *ReplaceOp
	Batch   *BatchOp
}

// ReplaceOp swaps Old for New at Old's current position.
type ReplaceOp struct {
	Old Element
	New Element
}

// BatchOp adds Add and removes Del. Add and Del must be disjoint and Del
// must be a subset of the scheme's current state; violations are silent
// no-ops per element, not errors.
type BatchOp struct {
	Add []Element
	Del []Element
}

// Apply builds an Operation carrying a Replace.
func Apply(old, new Element) Operation {
	return Operation{Replace: &ReplaceOp{Old: old, New: new}}
}

// ApplyBatch builds an Operation carrying a Batch.
func ApplyBatch(add, del []Element) Operation {
	return Operation{Batch: &BatchOp{Add: add, Del: del}}
}

// GenerateRandomState returns n independently-drawn 32-byte elements from
// a cryptographic RNG, matching the external state-generation contract
// every benchmark cell uses to seed a scheme.
func GenerateRandomState(n int) []Element {
	out := make([]Element, n)
	for i := range out {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			panic("accum: failed to read randomness: " + err.Error())
		}
		out[i] = b
	}
	return out
}
