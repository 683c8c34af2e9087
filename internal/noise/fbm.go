package noise

// Fbm layers simplex octaves into fractal Brownian motion. The zero value is
// not usable; construct with NewFbm.
type Fbm struct {
	perm       *Table
	octaves    int
	lacunarity float64
	gain       float64
	frequency  float64
}

// NewFbm builds a sampler over the given permutation table. Callers are
// expected to pass parameters already normalized (octaves >= 1, finite
// non-zero lacunarity, finite gain, positive finite frequency).
func NewFbm(perm *Table, octaves int, lacunarity, gain, frequency float64) *Fbm {
	if octaves < 1 {
		octaves = 1
	}
	return &Fbm{
		perm:       perm,
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
		frequency:  frequency,
	}
}

// Sample evaluates the layered noise at (x, y) and returns a value in
// [-1, 1]. The per-octave sum is normalized by the accumulated amplitude; a
// degenerate zero amplitude yields 0 instead of dividing by zero.
func (f *Fbm) Sample(x, y float64) float64 {
	freq := f.frequency
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for o := 0; o < f.octaves; o++ {
		sum += amp * Simplex2D(x*freq, y*freq, f.perm)
		norm += amp
		freq *= f.lacunarity
		amp *= f.gain
	}
	if norm == 0 {
		return 0
	}
	v := sum / norm
	// Guard against floating-point drift at octave boundaries.
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
