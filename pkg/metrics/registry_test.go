package metrics

import (
	"testing"
)

func TestRegistry_GaugeGetOrCreate(t *testing.T) {
	r := NewRegistry()
	g1 := r.Gauge("merkle_proof_size_bytes")
	g1.Set(64)

	g2 := r.Gauge("merkle_proof_size_bytes")
	if g2.Value() != 64 {
		t.Fatalf("second Gauge() call returned a fresh gauge: value = %d, want 64", g2.Value())
	}
	if g1 != g2 {
		t.Fatal("Gauge() should return the same *Gauge for the same name")
	}
}

func TestRegistry_HistogramGetOrCreate(t *testing.T) {
	r := NewRegistry()
	h1 := r.Histogram("hybrid_create_ms")
	h1.Observe(10)
	h1.Observe(20)

	h2 := r.Histogram("hybrid_create_ms")
	if h2.Count() != 2 {
		t.Fatalf("second Histogram() call returned a fresh histogram: count = %d, want 2", h2.Count())
	}
	if h1 != h2 {
		t.Fatal("Histogram() should return the same *Histogram for the same name")
	}
}

func TestRegistry_DistinctNamesDistinctMetrics(t *testing.T) {
	r := NewRegistry()
	r.Gauge("merkle_proof_size_bytes").Set(32)
	r.Gauge("rsa_proof_size_bytes").Set(256)

	if r.Gauge("merkle_proof_size_bytes").Value() != 32 {
		t.Fatal("merkle gauge clobbered by rsa gauge")
	}
	if r.Gauge("rsa_proof_size_bytes").Value() != 256 {
		t.Fatal("rsa gauge clobbered by merkle gauge")
	}
}

func TestRegistry_SnapshotIncludesGaugesAndHistograms(t *testing.T) {
	r := NewRegistry()
	r.Gauge("merkle_proof_size_bytes").Set(160)
	r.Histogram("merkle_create_ms").Observe(5)
	r.Histogram("merkle_create_ms").Observe(15)

	snap := r.Snapshot()

	gaugeVal, ok := snap["merkle_proof_size_bytes"].(int64)
	if !ok || gaugeVal != 160 {
		t.Fatalf("snapshot gauge = %v, want int64(160)", snap["merkle_proof_size_bytes"])
	}

	histVal, ok := snap["merkle_create_ms"].(map[string]interface{})
	if !ok {
		t.Fatalf("snapshot histogram entry has wrong type: %T", snap["merkle_create_ms"])
	}
	if histVal["count"].(int64) != 2 {
		t.Fatalf("snapshot histogram count = %v, want 2", histVal["count"])
	}
	if histVal["sum"].(float64) != 20 {
		t.Fatalf("snapshot histogram sum = %v, want 20", histVal["sum"])
	}
	if histVal["mean"].(float64) != 10 {
		t.Fatalf("snapshot histogram mean = %v, want 10", histVal["mean"])
	}
}

func TestRegistry_SnapshotIsPointInTimeCopy(t *testing.T) {
	r := NewRegistry()
	r.Gauge("hybrid_proof_size_bytes").Set(100)

	snap := r.Snapshot()
	r.Gauge("hybrid_proof_size_bytes").Set(200)

	if snap["hybrid_proof_size_bytes"].(int64) != 100 {
		t.Fatal("Snapshot should not reflect mutations made after it was taken")
	}
}

func TestRegistry_EmptySnapshot(t *testing.T) {
	r := NewRegistry()
	snap := r.Snapshot()
	if len(snap) != 0 {
		t.Fatalf("empty registry snapshot should be empty, got %d entries", len(snap))
	}
}
