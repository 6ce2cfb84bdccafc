package testfixtures

import "testing"

func TestIDGeneratorProducesSequentialIDs(t *testing.T) {
	gen := NewIDGenerator("")

	first := gen.Next()
	second := gen.Next()

	if first != "res-1" || second != "res-2" {
		t.Fatalf("unexpected identifiers: %q, %q", first, second)
	}
	if gen.Issued() != 2 {
		t.Fatalf("expected two issued identifiers, got %d", gen.Issued())
	}
}

func TestIDGeneratorNilNextFunc(t *testing.T) {
	var gen *IDGenerator
	if gen.NextFunc() != nil {
		t.Fatalf("expected nil generator to yield nil func so the ledger falls back to UUIDs")
	}
}
