package core

import (
	"strings"
	"testing"
)

func TestNormalizeObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Aquisição   de \t material\n de limpeza ", "Aquisição de material de limpeza"},
		{"simples", "simples"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeObject(tt.in); got != tt.want {
			t.Errorf("NormalizeObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentHash(t *testing.T) {
	h := ContentHash("Aquisição de material de limpeza")
	if len(h) != 12 {
		t.Fatalf("hash length = %d, want 12", len(h))
	}
	if h != ContentHash("Aquisição de material de limpeza") {
		t.Error("identical text must hash identically")
	}
	if h == ContentHash("outro objeto") {
		t.Error("different text should hash differently")
	}
}

func TestCompositeKey(t *testing.T) {
	key := CompositeKey("Aquisição de material", "00410-00001234/2023-01", "042/2023")
	parts := strings.SplitN(key, "_", 2)
	if len(parts[0]) != 12 {
		t.Errorf("object hash segment = %q, want 12 hex chars", parts[0])
	}
	if !strings.HasSuffix(key, "_00410-00001234/2023-01_042/2023") {
		t.Errorf("unexpected key %q", key)
	}

	// Whitespace differences in the object must not change the key.
	same := CompositeKey("Aquisição   de  material", "00410-00001234/2023-01", "042/2023")
	if key != same {
		t.Errorf("keys differ for equivalent objects: %q vs %q", key, same)
	}
}

func TestCompositeKeySentinels(t *testing.T) {
	key := CompositeKey("", "", "")
	want := SentinelNoObject + "_" + SentinelNoProcesso + "_" + SentinelNoNumero
	if key != want {
		t.Errorf("CompositeKey with missing fields = %q, want %q", key, want)
	}
	if key == "" {
		t.Error("composite key must never be empty")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Aquisição de material de limpeza", "aquisição_de_material_de_limpeza"},
		{"  Contrato nº 42/2023!  ", "contrato_nº_42_2023"},
		{"___", ""},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	long := Slug(strings.Repeat("aquisição de bens ", 10))
	if n := len([]rune(long)); n > 60 {
		t.Errorf("slug length = %d, want <= 60", n)
	}
	if strings.HasSuffix(long, "_") {
		t.Errorf("slug %q has trailing underscore after truncation", long)
	}
}

func TestPairIDRoundTrip(t *testing.T) {
	id := PairID("aquisição_de_material", 0, 2)
	if id != "aquisição_de_material_00_v2" {
		t.Fatalf("PairID = %q", id)
	}

	base, ok := BaseFromPairID(id)
	if !ok {
		t.Fatalf("BaseFromPairID(%q) did not match", id)
	}
	if base != "aquisição_de_material" {
		t.Errorf("base = %q", base)
	}
	if DoneMarker(base) != "aquisição_de_material_v0" {
		t.Errorf("DoneMarker = %q", DoneMarker(base))
	}
}

func TestBaseFromPairIDMalformed(t *testing.T) {
	for _, id := range []string{"", "noversion", "base_v0", "base_1_v0", "base_00_x1"} {
		if _, ok := BaseFromPairID(id); ok {
			t.Errorf("BaseFromPairID(%q) matched, want no match", id)
		}
	}
}
