package app

import (
	"slices"
	"testing"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Width = 16
	cfg.Height = 16
	return cfg
}

func TestNewSessionGeneratesField(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if s.Field() == nil {
		t.Fatal("session must generate a field on construction")
	}
	if s.Hash() != s.Field().Hash() {
		t.Fatal("cached hash must match the field hash")
	}
	if s.Seed() != 2470140894 { // FNV-1a of "default"
		t.Fatalf("canonical seed = %d, want 2470140894", s.Seed())
	}
}

func TestNewSessionRejectsUnknownSource(t *testing.T) {
	cfg := smallConfig()
	cfg.Source = "voxels"
	if _, err := NewSession(cfg); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestReseedIsDeterministic(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Reseed("42"); err != nil {
		t.Fatal(err)
	}
	first := append([]float32(nil), s.Field().Cells()...)
	firstHash := s.Hash()

	if err := s.Reseed("1999"); err != nil {
		t.Fatal(err)
	}
	if s.Hash() == firstHash && slices.Equal(first, s.Field().Cells()) {
		t.Fatal("different seeds should change the field")
	}

	if err := s.Reseed("42"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first, s.Field().Cells()) {
		t.Fatal("reseeding with the same value must reproduce the field")
	}
	if s.Hash() != firstHash {
		t.Fatalf("hash = %08x, want %08x", s.Hash(), firstHash)
	}
}

func TestToggleSource(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if s.SourceName() != SourceGrid {
		t.Fatalf("initial source = %q, want grid", s.SourceName())
	}
	gen := s.Generation()
	s.ToggleSource()
	if s.SourceName() != SourceLive {
		t.Fatalf("toggled source = %q, want live", s.SourceName())
	}
	if s.Generation() == gen {
		t.Fatal("toggle must bump the generation counter")
	}
}

func TestShadingAvailability(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if shade, _ := s.Shading(); shade == nil {
		t.Fatal("shading should be available on the grid source")
	}
	s.ToggleSource()
	if shade, _ := s.Shading(); shade != nil {
		t.Fatal("shading must be nil on the live source")
	}
	s.ToggleSource()
	s.ToggleShade()
	if shade, _ := s.Shading(); shade != nil {
		t.Fatal("shading must be nil when disabled")
	}
}

func TestParameterRoundTrip(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	gen := s.Generation()
	hash := s.Hash()

	if !s.SetIntParameter("octaves", 3) {
		t.Fatal("octaves should be settable")
	}
	if v, ok := s.IntParameter("octaves"); !ok || v != 3 {
		t.Fatalf("octaves = %d (%v), want 3", v, ok)
	}
	if s.Generation() == gen {
		t.Fatal("parameter change must bump the generation")
	}
	if s.Hash() == hash {
		t.Fatal("octave change should alter the field hash")
	}

	if !s.SetFloatParameter("gain", 0.7) {
		t.Fatal("gain should be settable")
	}
	if v, ok := s.FloatParameter("gain"); !ok || v != 0.7 {
		t.Fatalf("gain = %v (%v), want 0.7", v, ok)
	}

	// Out-of-range values clamp instead of failing.
	if !s.SetIntParameter("octaves", 100) {
		t.Fatal("overlarge octaves should clamp, not fail")
	}
	if v, _ := s.IntParameter("octaves"); v != 12 {
		t.Fatalf("octaves = %d, want clamp to 12", v)
	}

	if s.SetFloatParameter("rainfall", 1) {
		t.Fatal("unknown parameter key must be rejected")
	}
}

func TestParameterControlsDeclared(t *testing.T) {
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	keys := map[string]bool{}
	for _, ctrl := range s.ParameterControls() {
		keys[ctrl.Key] = true
	}
	for _, want := range []string{"octaves", "gain", "lacunarity", "frequency"} {
		if !keys[want] {
			t.Fatalf("control %q not declared", want)
		}
	}
}
