package terrain

import "math"

// Default noise parameters, substituted whenever a caller supplies a value
// outside the documented domain.
const (
	DefaultOctaves    = 6
	DefaultLacunarity = 2.0
	DefaultGain       = 0.5
	DefaultFrequency  = 0.0015
)

// Params holds the FBM tunables for a generation pass.
type Params struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64
}

// Config describes one elevation field generation request.
type Config struct {
	Width  int
	Height int

	Seed uint32

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  512,
		Height: 512,
		Params: Params{
			Octaves:    DefaultOctaves,
			Lacunarity: DefaultLacunarity,
			Gain:       DefaultGain,
			Frequency:  DefaultFrequency,
		},
	}
}

// normalized returns a copy with every field forced into its documented
// domain. Sampling never fails at runtime; bad values fall back to defaults.
func (p Params) normalized() Params {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Lacunarity == 0 || math.IsNaN(p.Lacunarity) || math.IsInf(p.Lacunarity, 0) {
		p.Lacunarity = DefaultLacunarity
	}
	if math.IsNaN(p.Gain) || math.IsInf(p.Gain, 0) {
		p.Gain = DefaultGain
	}
	if p.Frequency <= 0 || math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) {
		p.Frequency = DefaultFrequency
	}
	return p
}
