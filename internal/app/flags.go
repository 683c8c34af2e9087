package app

import (
	"flag"

	"terraview/internal/terrain"
	"terraview/internal/view"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed string

	Width  int
	Height int

	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64

	Source string

	WindowW int
	WindowH int

	ZoomMin  float64
	ZoomMax  float64
	ZoomSens float64

	Shade bool
}

// NewConfig returns a Config populated with the documented defaults.
func NewConfig() *Config {
	return &Config{
		Seed:       "default",
		Width:      512,
		Height:     512,
		Octaves:    terrain.DefaultOctaves,
		Lacunarity: terrain.DefaultLacunarity,
		Gain:       terrain.DefaultGain,
		Frequency:  terrain.DefaultFrequency,
		Source:     SourceGrid,
		WindowW:    960,
		WindowH:    640,
		ZoomMin:    view.DefaultMinZoom,
		ZoomMax:    view.DefaultMaxZoom,
		ZoomSens:   view.DefaultWheelSens,
		Shade:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "world seed (text or number)")
	fs.IntVar(&c.Width, "width", c.Width, "elevation grid width")
	fs.IntVar(&c.Height, "height", c.Height, "elevation grid height")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "FBM octave count")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "per-octave frequency multiplier")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "per-octave amplitude multiplier")
	fs.Float64Var(&c.Frequency, "frequency", c.Frequency, "base spatial frequency")
	fs.StringVar(&c.Source, "source", c.Source, "elevation source: grid or live")
	fs.IntVar(&c.WindowW, "window-width", c.WindowW, "window width in CSS pixels")
	fs.IntVar(&c.WindowH, "window-height", c.WindowH, "window height in CSS pixels")
	fs.Float64Var(&c.ZoomMin, "zoom-min", c.ZoomMin, "minimum zoom factor")
	fs.Float64Var(&c.ZoomMax, "zoom-max", c.ZoomMax, "maximum zoom factor")
	fs.Float64Var(&c.ZoomSens, "zoom-sens", c.ZoomSens, "wheel zoom sensitivity exponent")
	fs.BoolVar(&c.Shade, "shade", c.Shade, "enable hillshading on the baked grid")
}

// TerrainConfig converts the flag values into a generation config.
func (c *Config) TerrainConfig(seed uint32) terrain.Config {
	return terrain.Config{
		Width:  c.Width,
		Height: c.Height,
		Seed:   seed,
		Params: terrain.Params{
			Octaves:    c.Octaves,
			Lacunarity: c.Lacunarity,
			Gain:       c.Gain,
			Frequency:  c.Frequency,
		},
	}
}
