package accum

import "testing"

func TestGenerateRandomStateLengthAndSize(t *testing.T) {
	elements := GenerateRandomState(10)
	if len(elements) != 10 {
		t.Fatalf("expected 10 elements, got %d", len(elements))
	}
	for _, e := range elements {
		if len(e) != 32 {
			t.Fatalf("expected 32-byte elements, got %d bytes", len(e))
		}
	}
}

func TestGenerateRandomStateDistinct(t *testing.T) {
	elements := GenerateRandomState(50)
	seen := make(map[string]bool, len(elements))
	for _, e := range elements {
		key := string(e)
		if seen[key] {
			t.Fatalf("GenerateRandomState produced a duplicate element")
		}
		seen[key] = true
	}
}

func TestApplyBuildsReplace(t *testing.T) {
	op := Apply(Element("old"), Element("new"))
	if op.Replace == nil || op.Batch != nil {
		t.Fatalf("Apply should set Replace and leave Batch nil")
	}
	if string(op.Replace.Old) != "old" || string(op.Replace.New) != "new" {
		t.Fatalf("Apply did not preserve old/new elements")
	}
}

func TestApplyBatchBuildsBatch(t *testing.T) {
	add := []Element{Element("x")}
	del := []Element{Element("y")}
	op := ApplyBatch(add, del)
	if op.Batch == nil || op.Replace != nil {
		t.Fatalf("ApplyBatch should set Batch and leave Replace nil")
	}
	if len(op.Batch.Add) != 1 || len(op.Batch.Del) != 1 {
		t.Fatalf("ApplyBatch did not preserve add/del sets")
	}
}
