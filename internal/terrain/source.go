package terrain

import (
	"math"

	"terraview/internal/noise"
)

// Source yields a normalized elevation in [0, 1] for a world coordinate. One
// world unit corresponds to one grid cell at zoom 1, so the baked and live
// variants agree: the same world coordinate under the same seed samples the
// same value.
type Source interface {
	Sample(wx, wy float64) float64
}

// GridSource reads a precomputed field with nearest-neighbor lookup. Out of
// range coordinates clamp to the border cells.
type GridSource struct {
	field *Field
}

// NewGridSource wraps a generated field.
func NewGridSource(f *Field) *GridSource {
	return &GridSource{field: f}
}

// Sample implements Source.
func (s *GridSource) Sample(wx, wy float64) float64 {
	return s.field.At(int(math.Floor(wx)), int(math.Floor(wy)))
}

// Field returns the backing field.
func (s *GridSource) Field() *Field { return s.field }

// LiveSource evaluates the noise pipeline directly at world coordinates,
// trading per-pixel cost for resolution independence. It applies the same
// remap and continental mask as field generation.
type LiveSource struct {
	fbm  *noise.Fbm
	w, h float64
}

// NewLiveSource builds an on-the-fly sampler for cfg, resolving the
// permutation table through cache (nil uses the package-level cache).
func NewLiveSource(cache *noise.TableCache, cfg Config) *LiveSource {
	p := cfg.Params.normalized()
	var table *noise.Table
	if cache != nil {
		table = cache.Get(cfg.Seed)
	} else {
		table = noise.TableFor(cfg.Seed)
	}
	return &LiveSource{
		fbm: noise.NewFbm(table, p.Octaves, p.Lacunarity, p.Gain, p.Frequency),
		w:   float64(cfg.Width),
		h:   float64(cfg.Height),
	}
}

// Sample implements Source.
func (s *LiveSource) Sample(wx, wy float64) float64 {
	raw := s.fbm.Sample(wx, wy)
	nx := clamp01(wx / s.w)
	ny := clamp01(wy / s.h)
	return clamp01((raw + 1) / 2 * continentalMask(nx, ny))
}
