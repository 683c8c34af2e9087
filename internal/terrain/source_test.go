package terrain

import (
	"math"
	"testing"
)

func TestGridSourceNearestNeighbor(t *testing.T) {
	gen := NewGenerator(nil)
	f, err := gen.Generate(testConfig(16, 16, 11))
	if err != nil {
		t.Fatal(err)
	}
	src := NewGridSource(f)

	if got, want := src.Sample(3.7, 8.2), f.At(3, 8); got != want {
		t.Fatalf("Sample(3.7, 8.2) = %v, want cell (3,8) = %v", got, want)
	}
	// Negative coordinates floor toward the lower cell, then clamp.
	if got, want := src.Sample(-0.4, 2.0), f.At(0, 2); got != want {
		t.Fatalf("Sample(-0.4, 2) = %v, want %v", got, want)
	}
}

func TestGridSourceClampsOutOfRange(t *testing.T) {
	gen := NewGenerator(nil)
	f, err := gen.Generate(testConfig(8, 8, 3))
	if err != nil {
		t.Fatal(err)
	}
	src := NewGridSource(f)
	if src.Sample(-100, 4) != f.At(0, 4) {
		t.Fatal("far-left sample must clamp to column 0")
	}
	if src.Sample(4, 1e6) != f.At(4, 7) {
		t.Fatal("far-bottom sample must clamp to the last row")
	}
}

func TestSourcesAgreeAtCellCenters(t *testing.T) {
	cfg := testConfig(32, 32, 77)
	gen := NewGenerator(nil)
	f, err := gen.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	grid := NewGridSource(f)
	live := NewLiveSource(nil, cfg)

	// Both strategies implement the same contract: at exact cell
	// coordinates the baked value and the live evaluation coincide up to
	// the float32 storage rounding.
	for _, c := range [][2]int{{0, 0}, {5, 9}, {16, 16}, {31, 31}} {
		wx, wy := float64(c[0]), float64(c[1])
		g := grid.Sample(wx, wy)
		l := live.Sample(wx, wy)
		if math.Abs(g-l) > 1e-6 {
			t.Fatalf("sources disagree at (%d,%d): grid %v, live %v", c[0], c[1], g, l)
		}
	}
}

func TestLiveSourceBounds(t *testing.T) {
	live := NewLiveSource(nil, testConfig(64, 64, 123))
	for i := 0; i < 500; i++ {
		wx := float64(i%25)*3.1 - 5
		wy := float64(i/25)*3.7 - 5
		v := live.Sample(wx, wy)
		if v < 0 || v > 1 {
			t.Fatalf("live sample %v at (%v,%v) outside [0,1]", v, wx, wy)
		}
	}
}

func TestLiveSourceDeterministic(t *testing.T) {
	cfg := testConfig(16, 16, 2024)
	a := NewLiveSource(nil, cfg)
	b := NewLiveSource(nil, cfg)
	for i := 0; i < 100; i++ {
		wx, wy := float64(i)*0.77, float64(i)*1.31
		if a.Sample(wx, wy) != b.Sample(wx, wy) {
			t.Fatalf("live sources diverge at (%v,%v)", wx, wy)
		}
	}
}
