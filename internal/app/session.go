package app

import (
	"fmt"

	"terraview/internal/core"
	"terraview/internal/noise"
	"terraview/internal/terrain"
)

// Elevation source selection values.
const (
	SourceGrid = "grid"
	SourceLive = "live"
)

// Session owns the world state for one viewer instance: the permutation
// table cache, the current elevation field and its derived shading, and both
// sampling strategies. Every visual-affecting mutation bumps a generation
// counter so the frame loop can make an explicit redraw decision instead of
// relying on a hidden dirty flag.
type Session struct {
	cache *noise.TableCache
	gen   *terrain.Generator

	cfg      terrain.Config
	seedText string

	field   *terrain.Field
	shading *terrain.Shading
	hash    uint32

	gridSrc *terrain.GridSource
	liveSrc *terrain.LiveSource

	useLive       bool
	shadeEnabled  bool
	shadeStrength float64

	generation uint64
}

// NewSession builds a session from flag configuration, generating the
// initial field synchronously.
func NewSession(cfg *Config) (*Session, error) {
	if cfg.Source != SourceGrid && cfg.Source != SourceLive {
		return nil, fmt.Errorf("app: unknown elevation source %q", cfg.Source)
	}
	s := &Session{
		cache:         noise.NewTableCache(noise.DefaultCacheCapacity),
		seedText:      cfg.Seed,
		useLive:       cfg.Source == SourceLive,
		shadeEnabled:  cfg.Shade,
		shadeStrength: terrain.DefaultShadeStrength,
	}
	s.gen = terrain.NewGenerator(s.cache)
	s.cfg = cfg.TerrainConfig(noise.NormalizeSeed(cfg.Seed))
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate rebuilds the elevation field from the current configuration.
// The new field replaces the old one wholesale; samplers and shading are
// rebuilt against it.
func (s *Session) Regenerate() error {
	field, err := s.gen.Generate(s.cfg)
	if err != nil {
		return err
	}
	s.field = field
	s.hash = field.Hash()
	s.shading = terrain.ComputeShading(field, terrain.DefaultLightDir)
	s.gridSrc = terrain.NewGridSource(field)
	s.liveSrc = terrain.NewLiveSource(s.cache, s.cfg)
	s.generation++
	return nil
}

// Reseed normalizes raw and regenerates under the new canonical seed.
func (s *Session) Reseed(raw string) error {
	s.seedText = raw
	s.cfg.Seed = noise.NormalizeSeed(raw)
	return s.Regenerate()
}

// Source returns the active sampling strategy.
func (s *Session) Source() terrain.Source {
	if s.useLive {
		return s.liveSrc
	}
	return s.gridSrc
}

// SourceName reports which strategy is active.
func (s *Session) SourceName() string {
	if s.useLive {
		return SourceLive
	}
	return SourceGrid
}

// ToggleSource switches between the baked grid and live samplers.
func (s *Session) ToggleSource() {
	s.useLive = !s.useLive
	s.generation++
}

// Shading returns the shading grid and blend strength, or nil when shading
// is disabled or the live sampler is active (it has no baked neighbors).
func (s *Session) Shading() (*terrain.Shading, float64) {
	if !s.shadeEnabled || s.useLive {
		return nil, 0
	}
	return s.shading, s.shadeStrength
}

// ToggleShade flips hillshading.
func (s *Session) ToggleShade() {
	s.shadeEnabled = !s.shadeEnabled
	s.generation++
}

// Seed returns the canonical 32-bit seed.
func (s *Session) Seed() uint32 { return s.cfg.Seed }

// SeedText returns the raw seed value the user supplied.
func (s *Session) SeedText() string { return s.seedText }

// Hash returns the FNV-1a digest of the current field, the determinism
// contract exposed on the HUD and by the worldhash tool.
func (s *Session) Hash() uint32 { return s.hash }

// Field exposes the current elevation field.
func (s *Session) Field() *terrain.Field { return s.field }

// Generation increases on every visual-affecting mutation.
func (s *Session) Generation() uint64 { return s.generation }

// Size reports the grid dimensions.
func (s *Session) Size() core.Size {
	return core.Size{W: s.cfg.Width, H: s.cfg.Height}
}

// ParameterControls implements core.ParameterControlsProvider for the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 12, HasMin: true, HasMax: true},
		{Key: "gain", Label: "Gain", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Step: 0.1, Min: 1.1, Max: 4, HasMin: true, HasMax: true},
		{Key: "frequency", Label: "Frequency", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0.0005, Max: 0.05, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter. A successful set
// regenerates the field.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != "octaves" {
		return false
	}
	if value < 1 {
		value = 1
	}
	if value > 12 {
		value = 12
	}
	if value == s.cfg.Params.Octaves {
		return true
	}
	s.cfg.Params.Octaves = value
	return s.Regenerate() == nil
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	p := &s.cfg.Params
	switch key {
	case "gain":
		p.Gain = clampFloat(value, 0, 1)
	case "lacunarity":
		p.Lacunarity = clampFloat(value, 1.1, 4)
	case "frequency":
		p.Frequency = clampFloat(value, 0.0005, 0.05)
	default:
		return false
	}
	return s.Regenerate() == nil
}

// IntParameter implements core.IntParameterGetter.
func (s *Session) IntParameter(key string) (int, bool) {
	if key == "octaves" {
		return s.cfg.Params.Octaves, true
	}
	return 0, false
}

// FloatParameter implements core.FloatParameterGetter.
func (s *Session) FloatParameter(key string) (float64, bool) {
	switch key {
	case "gain":
		return s.cfg.Params.Gain, true
	case "lacunarity":
		return s.cfg.Params.Lacunarity, true
	case "frequency":
		return s.cfg.Params.Frequency, true
	}
	return 0, false
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
