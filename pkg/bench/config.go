// Package bench implements the benchmark runner: it drives each
// accumulator scheme through create, a bounded batch of updates, a
// membership proof and its verification, across a closed set of state
// sizes, and aggregates per-cell timings and proof sizes across several
// runs.
package bench

import (
	"io"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/metrics"
)

// Configuration constants, hard-coded at module scope per the harness's
// "no persistent config" contract; cmd/accbench may override these via
// flags, but there is no config file layer.
const (
	// RSAModulusBits is the default RSA modulus size used by both RSA
	// variants and by each Hybrid segment.
	RSAModulusBits = 2048

	// PrimeBits is the bit length of hash-to-prime element
	// representatives.
	PrimeBits = 128

	// DefaultSegments is the default number of Hybrid segments.
	DefaultSegments = 16

	// NumRuns is the number of independent runs averaged per (scheme, N)
	// cell.
	NumRuns = 5

	// FixedUpdates bounds how many individual element mutations are
	// applied per run; the actual count is min(FixedUpdates, N).
	FixedUpdates = 100

	// TrapdoorFreeRSACutoff is the state size above which the
	// trapdoor-free RSA variant is skipped: its O(N) witness generation
	// makes larger cells impractically slow.
	TrapdoorFreeRSACutoff = 5000
)

// QuickSizes is the state-size sweep used for a fast, iterative
// benchmark run.
var QuickSizes = []int{100, 500, 1000}

// PaperSizes is the larger state-size sweep used to reproduce
// paper-scale results.
var PaperSizes = []int{100, 1000, 5000, 10000, 50000}

// SchemeName identifies one of the five accumulator schemes the runner
// can drive.
type SchemeName string

const (
	SchemeMerkle            SchemeName = "merkle"
	SchemeRSA               SchemeName = "rsa"
	SchemeRSATrapdoored     SchemeName = "rsa_trapdoored"
	SchemeHybrid            SchemeName = "hybrid"
	SchemeVerkle            SchemeName = "verkle"
)

// AllSchemes lists every scheme the runner knows how to drive, in report
// order.
var AllSchemes = []SchemeName{
	SchemeMerkle,
	SchemeRSA,
	SchemeRSATrapdoored,
	SchemeHybrid,
	SchemeVerkle,
}

// Config bundles the runner's tunable parameters, with defaults matching
// the constants above.
type Config struct {
	Sizes        []int
	Runs         int
	Segments     int
	ModulusBits  int
	PrimeBits    int
	FixedUpdates int

	// Progress, if non-nil, receives one colored line per completed
	// (scheme, N) cell. Optional, off by default; cmd/accbench points
	// it at stderr.
	Progress io.Writer

	// Metrics, if non-nil, receives a create/update/prove/verify
	// histogram observation per completed cell, named
	// "<scheme>_<dimension>_ms". Optional; cmd/accbench wires this to
	// metrics.DefaultRegistry when --metrics-addr is set.
	Metrics *metrics.Registry
}

// DefaultConfig returns a Config using the quick size sweep and the
// module-scope constants above.
func DefaultConfig() Config {
	return Config{
		Sizes:        QuickSizes,
		Runs:         NumRuns,
		Segments:     DefaultSegments,
		ModulusBits:  RSAModulusBits,
		PrimeBits:    PrimeBits,
		FixedUpdates: FixedUpdates,
	}
}
