package rsaacc

import (
	"math/big"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// PrimeBits is the default bit length used when mapping elements to
// prime representatives.
const PrimeBits = 128

// Accumulator is the trapdoor-free RSA accumulator: update recomputes
// the commitment from the full element set rather than touching the
// exponent incrementally, so it never needs phi(N).
type Accumulator struct {
	params    Params
	primeBits int

	state    []accum.Element
	primeMap map[string]*big.Int

	value *big.Int
}

var _ accum.Scheme = (*Accumulator)(nil)

// New constructs a trapdoor-free accumulator over the given elements,
// generating a fresh RSA modulus. It calls Create, so Value is already
// materialized on return.
func New(elements []accum.Element, modulusBits int) (*Accumulator, error) {
	params, err := Setup(modulusBits, false)
	if err != nil {
		return nil, err
	}
	a := &Accumulator{
		params:    params,
		primeBits: PrimeBits,
		state:     append([]accum.Element(nil), elements...),
		primeMap:  make(map[string]*big.Int, len(elements)),
	}
	a.Create()
	return a, nil
}

func (a *Accumulator) primeFor(e accum.Element) *big.Int {
	key := string(e)
	if p, ok := a.primeMap[key]; ok {
		return p
	}
	p := xcrypto.HashToPrime(e, a.primeBits)
	a.primeMap[key] = p
	return p
}

// Create resolves every element to its prime representative and sets
// Value = g^(product of primes) mod N.
func (a *Accumulator) Create() {
	primes := make([]*big.Int, len(a.state))
	for i, e := range a.state {
		primes[i] = a.primeFor(e)
	}
	product := xcrypto.Product(primes)
	a.value = new(big.Int).Exp(a.params.G, product, a.params.N)
}

// ProveMembership computes the witness for e: g raised to the product of
// every OTHER element's prime, mod N. This is the O(N) bottleneck that
// caps this variant's practical state size.
func (a *Accumulator) ProveMembership(e accum.Element) (accum.Proof, bool) {
	idx := -1
	for i, s := range a.state {
		if string(s) == string(e) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false
	}

	others := make([]*big.Int, 0, len(a.state)-1)
	for i, s := range a.state {
		if i == idx {
			continue
		}
		others = append(others, a.primeFor(s))
	}
	product := xcrypto.Product(others)
	witness := new(big.Int).Exp(a.params.G, product, a.params.N)
	return Witness{W: witness}, true
}

// VerifyMembership accepts iff witness^prime(e) == Value (mod N).
func (a *Accumulator) VerifyMembership(e accum.Element, proof accum.Proof) bool {
	w, ok := proof.(Witness)
	if !ok {
		return false
	}
	return verify(a.params, a.value, a.primeFor(e), w)
}

func verify(params Params, value *big.Int, prime *big.Int, w Witness) bool {
	got := new(big.Int).Exp(w.W, prime, params.N)
	return got.Cmp(value) == 0
}

// ApplyChange only supports accum.BatchOp; the trapdoor-free variant
// updates by recomputing Value from the resulting state.
func (a *Accumulator) ApplyChange(op accum.Operation) error {
	if op.Batch == nil {
		return accum.ErrUnsupportedOperation
	}
	a.applyBatch(op.Batch)
	a.Create()
	return nil
}

func (a *Accumulator) applyBatch(batch *accum.BatchOp) {
	del := make(map[string]bool, len(batch.Del))
	for _, e := range batch.Del {
		del[string(e)] = true
	}
	next := a.state[:0:0]
	for _, e := range a.state {
		if !del[string(e)] {
			next = append(next, e)
		}
	}
	for _, e := range batch.Add {
		next = append(next, e)
	}
	a.state = next
}

// Accumulator implements accum.Scheme, returning Value's big-endian
// encoding.
func (a *Accumulator) Accumulator() []byte {
	return xcrypto.IntToBytes(a.value)
}

// Value returns the accumulator's integer commitment.
func (a *Accumulator) Value() *big.Int {
	return a.value
}

// Params returns the accumulator's RSA setup parameters.
func (a *Accumulator) Params() Params {
	return a.params
}

// State implements accum.Scheme.
func (a *Accumulator) State() []accum.Element {
	return append([]accum.Element(nil), a.state...)
}

// ProofSize implements accum.Scheme: one witness integer, sized to the
// modulus.
func (a *Accumulator) ProofSize() int {
	return a.params.WitnessSize()
}

// Witness is the RSA family's proof type: a single integer w such that
// w^prime(e) == accumulator value (mod N).
type Witness struct {
	W *big.Int
}
