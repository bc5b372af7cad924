// Command accbench runs the accumulator benchmark harness: it builds
// each of the five schemes (Merkle, RSA, RSA-trapdoored, Hybrid, Verkle)
// over a closed set of state sizes, measures create/update/prove/verify
// timings and proof size, and writes a result table to stdout and
// optionally a JSON file.
//
// Usage:
//
//	accbench [flags]
//
// Flags:
//
//	--sizes          quick or paper (default: quick)
//	--runs           runs averaged per cell (default: 5)
//	--segments       Hybrid segment count (default: 16)
//	--modulus-bits   RSA modulus bit length (default: 2048)
//	--prime-bits     stored in the run config (default: 128); the schemes
//	                 always use 128-bit hash-to-prime representatives
//	--out            path to write a JSON result file (optional)
//	--metrics-addr   address to serve Prometheus metrics on (optional)
package main

import (
	"net/http"
	"os"

	"github.com/cactusYuri/hybrid-cryptographic/pkg/bench"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/log"
	"github.com/cactusYuri/hybrid-cryptographic/pkg/metrics"
)

func serveMetrics(addr string, exporter *metrics.PrometheusExporter) error {
	return http.ListenAndServe(addr, exporter.Handler())
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	opts, exit, code := parseFlags(args)
	if exit {
		return code
	}

	logger := log.Default().Module("cli")

	cfg := bench.DefaultConfig()
	if opts.sizes == "paper" {
		cfg.Sizes = bench.PaperSizes
	}
	cfg.Runs = opts.runs
	cfg.Segments = opts.segments
	cfg.ModulusBits = int(opts.modulusBits)
	cfg.PrimeBits = int(opts.primeBits)
	cfg.Progress = os.Stderr

	if opts.metricsAddr != "" {
		cfg.Metrics = metrics.DefaultRegistry

		exporter := metrics.NewPrometheusExporter(metrics.DefaultRegistry, metrics.DefaultPrometheusConfig())
		go func() {
			logger.Info("serving metrics", "addr", opts.metricsAddr)
			if err := serveMetrics(opts.metricsAddr, exporter); err != nil {
				logger.Error("metrics server exited", "err", err)
			}
		}()
	}

	logger.Info("starting benchmark sweep", "sizes", cfg.Sizes, "runs", cfg.Runs, "segments", cfg.Segments)

	results := bench.Run(cfg)
	bench.WriteTable(os.Stdout, results)

	if opts.out != "" {
		if err := bench.WriteJSON(opts.out, results); err != nil {
			logger.Error("failed to write results", "path", opts.out, "err", err)
			return 1
		}
		logger.Info("wrote results", "path", opts.out)
	}

	return 0
}
