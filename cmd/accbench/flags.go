package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/bench"
)

// cliOptions holds the parsed command-line flags for accbench.
type cliOptions struct {
	sizes       string
	runs        int
	segments    int
	modulusBits uint64
	primeBits   uint64
	out         string
	metricsAddr string
}

// parseFlags parses args and returns the resulting options. If the user
// requested --help or gave invalid flags, exit is true and code is the
// process exit code to return immediately.
func parseFlags(args []string) (cliOptions, bool, int) {
	defaults := bench.DefaultConfig()

	fs := newCustomFlagSet("accbench")
	opts := cliOptions{}

	fs.StringVar(&opts.sizes, "sizes", "quick", "state-size sweep: quick or paper")
	fs.IntVar(&opts.runs, "runs", defaults.Runs, "runs averaged per (scheme, N) cell")
	fs.IntVar(&opts.segments, "segments", defaults.Segments, "hybrid segment count")
	fs.Uint64Var(&opts.modulusBits, "modulus-bits", uint64(defaults.ModulusBits), "RSA modulus bit length")
	fs.Uint64Var(&opts.primeBits, "prime-bits", uint64(defaults.PrimeBits), "hash-to-prime bit length recorded in the config; the schemes always use 128")
	fs.StringVar(&opts.out, "out", "", "path to write a JSON result file")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, true, 0
		}
		fmt.Fprintln(fs.Output(), err)
		return opts, true, 2
	}

	if opts.sizes != "quick" && opts.sizes != "paper" {
		fmt.Fprintf(fs.Output(), "invalid --sizes %q: must be quick or paper\n", opts.sizes)
		return opts, true, 2
	}

	return opts, false, 0
}

// flagSet wraps flag.FlagSet to add support for uint64 flags.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior.
func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// Uint64Var defines a uint64 flag. Go's standard flag package lacks uint64
// support, so we use a custom Value implementation. Used here for
// --modulus-bits and --prime-bits, which are naturally unsigned.
func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

// uint64Value implements flag.Value for uint64 flags.
type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}
