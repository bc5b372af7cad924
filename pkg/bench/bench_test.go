package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testConfig keeps RSA setup fast; production runs use
// RSAModulusBits=2048 via DefaultConfig.
func testConfig(sizes []int) Config {
	cfg := DefaultConfig()
	cfg.Sizes = sizes
	cfg.ModulusBits = 256
	cfg.Segments = 4
	cfg.FixedUpdates = 10
	cfg.Runs = 2
	return cfg
}

func TestRunProducesAllCells(t *testing.T) {
	cfg := testConfig([]int{20})
	results := Run(cfg)
	require.Len(t, results, len(AllSchemes))

	seen := make(map[SchemeName]bool)
	for _, r := range results {
		seen[r.Scheme] = true
		if r.Skipped {
			continue
		}
		require.Greater(t, r.ProofSize, 0)
	}
	for _, s := range AllSchemes {
		require.True(t, seen[s], "missing result for scheme %s", s)
	}
}

func TestRunSkipsLargeTrapdoorFreeRSA(t *testing.T) {
	cfg := testConfig([]int{TrapdoorFreeRSACutoff + 1})
	results := Run(cfg)
	for _, r := range results {
		if r.Scheme == SchemeRSA {
			require.True(t, r.Skipped)
		}
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	cfg := testConfig([]int{10})
	results := Run(cfg)

	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, WriteJSON(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\"scheme\"")
}

func TestWriteTableProducesARow(t *testing.T) {
	cfg := testConfig([]int{10})
	results := Run(cfg)

	var buf bytes.Buffer
	WriteTable(&buf, results)
	require.Contains(t, buf.String(), "merkle")
}
