package rsaacc

import (
	"errors"
	"math/big"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/accum"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/xcrypto"
)

// ErrNonInvertible is returned by Trapdoored.ApplyChange when the
// product of deleted elements' primes is not invertible mod phi(N). With
// 128-bit prime representatives this is astronomically unlikely; it
// indicates prime generation drew a factor of phi(N), an invariant
// violation rather than a benign condition.
var ErrNonInvertible = errors.New("rsaacc: deletion product not invertible mod phi(N)")

// Trapdoored is the batched RSA accumulator: it retains phi(N) so that
// additions and deletions can be applied directly to the exponent via
// modular exponentiation and modular inverse, instead of recomputing the
// commitment from the full state on every update.
type Trapdoored struct {
	params    Params
	primeBits int

	state    map[string]accum.Element
	primeMap map[string]*big.Int

	value *big.Int
}

var _ accum.Scheme = (*Trapdoored)(nil)

// NewTrapdoored constructs a batched RSA accumulator over elements,
// generating a fresh RSA modulus with the trapdoor retained.
func NewTrapdoored(elements []accum.Element, modulusBits int) (*Trapdoored, error) {
	params, err := Setup(modulusBits, true)
	if err != nil {
		return nil, err
	}
	t := &Trapdoored{
		params:   params,
		primeBits: PrimeBits,
		state:    make(map[string]accum.Element, len(elements)),
		primeMap: make(map[string]*big.Int, len(elements)),
	}
	for _, e := range elements {
		t.state[string(e)] = e
	}
	t.Create()
	return t, nil
}

func (t *Trapdoored) primeFor(e accum.Element) *big.Int {
	key := string(e)
	if p, ok := t.primeMap[key]; ok {
		return p
	}
	p := xcrypto.HashToPrime(e, t.primeBits)
	t.primeMap[key] = p
	return p
}

// Create resolves every element to its prime and sets Value from
// scratch. Used for initial construction and as the ground truth in
// update-consistency tests; the batched path below never calls this
// after construction.
func (t *Trapdoored) Create() {
	primes := make([]*big.Int, 0, len(t.state))
	for _, e := range t.state {
		primes = append(primes, t.primeFor(e))
	}
	product := xcrypto.Product(primes)
	t.value = new(big.Int).Exp(t.params.G, product, t.params.N)
}

// ProveMembership mirrors Accumulator.ProveMembership: the witness is g
// raised to the product of every other element's prime.
func (t *Trapdoored) ProveMembership(e accum.Element) (accum.Proof, bool) {
	if _, ok := t.state[string(e)]; !ok {
		return nil, false
	}
	others := make([]*big.Int, 0, len(t.state))
	for key, other := range t.state {
		if key == string(e) {
			continue
		}
		others = append(others, t.primeFor(other))
	}
	product := xcrypto.Product(others)
	witness := new(big.Int).Exp(t.params.G, product, t.params.N)
	return Witness{W: witness}, true
}

// VerifyMembership accepts iff witness^prime(e) == Value (mod N).
func (t *Trapdoored) VerifyMembership(e accum.Element, proof accum.Proof) bool {
	w, ok := proof.(Witness)
	if !ok {
		return false
	}
	return verify(t.params, t.value, t.primeFor(e), w)
}

// ApplyChange applies a batched add/delete to the exponent directly:
// Value <- Value^(product of added primes) mod N, then
// Value <- Value^(inverse of product of deleted primes mod phi(N)) mod N.
// Deleting an element never added is a silent no-op for that element.
// Only a genuinely non-invertible deletion product returns an error.
func (t *Trapdoored) ApplyChange(op accum.Operation) error {
	if op.Batch == nil {
		return accum.ErrUnsupportedOperation
	}
	return t.applyBatch(op.Batch)
}

func (t *Trapdoored) applyBatch(batch *accum.BatchOp) error {
	addPrimes := make([]*big.Int, 0, len(batch.Add))
	for _, e := range batch.Add {
		key := string(e)
		if _, exists := t.state[key]; exists {
			continue
		}
		addPrimes = append(addPrimes, t.primeFor(e))
	}

	delPrimes := make([]*big.Int, 0, len(batch.Del))
	for _, e := range batch.Del {
		key := string(e)
		if _, exists := t.state[key]; !exists {
			continue
		}
		delPrimes = append(delPrimes, t.primeFor(e))
	}

	if len(addPrimes) > 0 {
		productAdd := xcrypto.Product(addPrimes)
		t.value.Exp(t.value, productAdd, t.params.N)
	}

	if len(delPrimes) > 0 {
		productDel := xcrypto.Product(delPrimes)
		inverse := new(big.Int).ModInverse(productDel, t.params.Phi)
		if inverse == nil {
			return ErrNonInvertible
		}
		t.value.Exp(t.value, inverse, t.params.N)
	}

	for _, e := range batch.Add {
		t.state[string(e)] = append(accum.Element(nil), e...)
	}
	for _, e := range batch.Del {
		key := string(e)
		delete(t.state, key)
		delete(t.primeMap, key)
	}
	return nil
}

// Accumulator implements accum.Scheme.
func (t *Trapdoored) Accumulator() []byte {
	return xcrypto.IntToBytes(t.value)
}

// Value returns the accumulator's integer commitment.
func (t *Trapdoored) Value() *big.Int {
	return t.value
}

// Params returns the accumulator's RSA setup parameters.
func (t *Trapdoored) Params() Params {
	return t.params
}

// State implements accum.Scheme.
func (t *Trapdoored) State() []accum.Element {
	out := make([]accum.Element, 0, len(t.state))
	for _, e := range t.state {
		out = append(out, e)
	}
	return out
}

// ProofSize implements accum.Scheme.
func (t *Trapdoored) ProofSize() int {
	return t.params.WitnessSize()
}
