package domain

import "testing"

func TestNewLineKeyNullSafety(t *testing.T) {
	empty := ""
	v1 := "v1"

	if NewLineKey("p1", nil) != NewLineKey("p1", nil) {
		t.Fatalf("two absent-variant keys for the same product must be equal")
	}
	if NewLineKey("p1", nil) != NewLineKey("p1", &empty) {
		t.Fatalf("empty variant id must normalize to the absent identity")
	}
	if NewLineKey("p1", nil) == NewLineKey("p1", &v1) {
		t.Fatalf("absent variant must not equal a concrete variant")
	}
	if NewLineKey("p1", &v1) == NewLineKey("p2", &v1) {
		t.Fatalf("different products must not share a key")
	}
}

func TestCartLineTotal(t *testing.T) {
	line := CartLine{UnitPrice: 1.5, Quantity: 4}
	if got := line.Total(); got != 6.0 {
		t.Fatalf("expected 6.0, got %v", got)
	}
}

func TestVariantLabel(t *testing.T) {
	v := Variant{SKU: "SKU-1", Options: map[string]string{"Size": "M", "Color": "Red"}}
	if got := v.Label(); got != "Color: Red, Size: M" {
		t.Fatalf("unexpected label %q", got)
	}

	bare := Variant{SKU: "SKU-1"}
	if got := bare.Label(); got != "SKU-1" {
		t.Fatalf("expected sku fallback, got %q", got)
	}
}
