package terrain

import "math"

// Default hillshading inputs: light arriving from the upper-left, blended at
// a strength that keeps biome colors readable.
var DefaultLightDir = [3]float64{-1, -1, 1}

const DefaultShadeStrength = 0.6

// Shading is a per-cell light intensity grid in [0, 1], aligned with the
// field it was computed from.
type Shading struct {
	W, H int
	data []float32
}

// ComputeShading estimates slope normals from central differences of the
// elevation field and lights them with the given direction vector. The
// direction is normalized internally; a zero vector falls back to the
// default.
func ComputeShading(f *Field, lightDir [3]float64) *Shading {
	lx, ly, lz := lightDir[0], lightDir[1], lightDir[2]
	n := math.Sqrt(lx*lx + ly*ly + lz*lz)
	if n == 0 {
		lx, ly, lz = DefaultLightDir[0], DefaultLightDir[1], DefaultLightDir[2]
		n = math.Sqrt(lx*lx + ly*ly + lz*lz)
	}
	lx, ly, lz = lx/n, ly/n, lz/n

	s := &Shading{W: f.W, H: f.H, data: make([]float32, f.W*f.H)}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			gx := (f.At(x+1, y) - f.At(x-1, y)) / 2
			gy := (f.At(x, y+1) - f.At(x, y-1)) / 2
			// Surface normal of the height field is (-gx, -gy, 1).
			nn := math.Sqrt(gx*gx + gy*gy + 1)
			intensity := (-gx*lx - gy*ly + lz) / nn
			s.data[y*f.W+x] = float32(clamp01(intensity))
		}
	}
	return s
}

// At returns the light intensity at cell (x, y), clamping out-of-range
// indices to the border.
func (s *Shading) At(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= s.W {
		x = s.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.H {
		y = s.H - 1
	}
	return float64(s.data[y*s.W+x])
}

// ShadeFactor converts a light intensity into a color multiplier. Strength 0
// keeps the base color, strength 1 applies full shading.
func ShadeFactor(intensity, strength float64) float64 {
	return (1 - strength) + strength*clamp01(intensity)
}
