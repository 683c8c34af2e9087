package terrain

import (
	"encoding/binary"
	"fmt"
	"math"

	"terraview/internal/noise"
)

// Field is a row-major grid of normalized elevation values in [0, 1]. A
// field is immutable once generated; regeneration produces a fresh field and
// the old one is discarded wholesale.
type Field struct {
	W, H int
	data []float32
}

// Generator builds elevation fields, resolving permutation tables through an
// injectable cache so table reuse is owned by the session rather than hidden
// in package state.
type Generator struct {
	cache *noise.TableCache
}

// NewGenerator creates a generator backed by the given table cache. A nil
// cache falls back to the package-level cache in the noise package.
func NewGenerator(cache *noise.TableCache) *Generator {
	return &Generator{cache: cache}
}

func (g *Generator) table(seed uint32) *noise.Table {
	if g.cache != nil {
		return g.cache.Get(seed)
	}
	return noise.TableFor(seed)
}

// Generate synthesizes an elevation field for cfg. Dimensions are validated
// here because they are configuration errors; everything downstream is total.
func (g *Generator) Generate(cfg Config) (*Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("terrain: invalid field dimensions %dx%d", cfg.Width, cfg.Height)
	}
	p := cfg.Params.normalized()
	fbm := noise.NewFbm(g.table(cfg.Seed), p.Octaves, p.Lacunarity, p.Gain, p.Frequency)

	f := &Field{W: cfg.Width, H: cfg.Height, data: make([]float32, cfg.Width*cfg.Height)}
	for j := 0; j < cfg.Height; j++ {
		ny := float64(j) / float64(cfg.Height)
		for i := 0; i < cfg.Width; i++ {
			nx := float64(i) / float64(cfg.Width)
			// Sampling at grid indices keeps the spatial frequency
			// independent of the field resolution.
			raw := fbm.Sample(float64(i), float64(j))
			elev := (raw + 1) / 2 * continentalMask(nx, ny)
			f.data[j*cfg.Width+i] = float32(clamp01(elev))
		}
	}
	return f, nil
}

// At returns the elevation at cell (x, y); indices are clamped to the grid,
// never wrapped.
func (f *Field) At(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.W {
		x = f.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.H {
		y = f.H - 1
	}
	return float64(f.data[y*f.W+x])
}

// Cells exposes the backing slice for tests and bulk readers. Treat it as
// read-only.
func (f *Field) Cells() []float32 { return f.data }

// Hash returns the FNV-1a digest of the raw little-endian float32 buffer.
// Equal seeds and parameters produce equal hashes across runs and platforms,
// which makes this the determinism regression contract.
func (f *Field) Hash() uint32 {
	buf := make([]byte, 4*len(f.data))
	for i, v := range f.data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return noise.Fnv1a(buf)
}
