package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON serializes results as an indented JSON array to path.
func WriteJSON(path string, results []Result) error {
	rows := make([]reportRow, len(results))
	for i, r := range results {
		rows[i] = r.toRow()
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	return nil
}

// WriteTable renders results as a human-readable column table to w.
func WriteTable(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-16s %10s %14s %16s %14s %14s %12s\n",
		"scheme", "N", "create(ms)", "update/op(ms)", "prove(ms)", "verify(ms)", "proof(B)")
	for _, r := range results {
		if r.Skipped {
			fmt.Fprintf(w, "%-16s %10d %s\n", r.Scheme, r.N, "SKIPPED: "+r.Reason)
			continue
		}
		fmt.Fprintf(w, "%-16s %10d %14.3f %16.3f %14.3f %14.3f %12d\n",
			r.Scheme, r.N,
			millis(r.CreateTime), millis(r.UpdateTimePerOp), millis(r.ProveTime), millis(r.VerifyTime),
			r.ProofSize)
	}
}
