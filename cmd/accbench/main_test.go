package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	opts, exit, _ := parseFlags(nil)
	if exit {
		t.Fatalf("expected no exit for default flags")
	}
	if opts.sizes != "quick" {
		t.Fatalf("expected default sizes=quick, got %q", opts.sizes)
	}
	if opts.segments != 16 {
		t.Fatalf("expected default segments=16, got %d", opts.segments)
	}
}

func TestParseFlagsRejectsUnknownSizes(t *testing.T) {
	_, exit, code := parseFlags([]string{"--sizes=bogus"})
	if !exit || code == 0 {
		t.Fatalf("expected an exit with nonzero code for an invalid --sizes value")
	}
}

func TestParseFlagsOverridesModulusBits(t *testing.T) {
	opts, exit, _ := parseFlags([]string{"--modulus-bits=512"})
	if exit {
		t.Fatalf("expected no exit")
	}
	if opts.modulusBits != 512 {
		t.Fatalf("expected modulus-bits=512, got %d", opts.modulusBits)
	}
}
