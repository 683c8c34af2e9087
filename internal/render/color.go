package render

import (
	"image/color"
	"math"
)

// ColorMapper turns a normalized elevation value into an RGBA color. Inputs
// are clamped to [0, 1]; every input maps to exactly one color.
type ColorMapper interface {
	Map(v float64) color.RGBA
}

// ColorLUT is a fixed ordered lookup table indexed by round(v * (N-1)). The
// default table keeps relative luminance strictly increasing so the elevation
// ordering survives color-vision deficiencies.
type ColorLUT struct {
	colors []color.RGBA
}

// NewColorLUT wraps an ordered color table. Empty tables fall back to the
// default elevation palette.
func NewColorLUT(colors []color.RGBA) *ColorLUT {
	if len(colors) == 0 {
		colors = DefaultElevationLUT()
	}
	return &ColorLUT{colors: colors}
}

// Map implements ColorMapper.
func (l *ColorLUT) Map(v float64) color.RGBA {
	v = clamp01(v)
	idx := int(math.Round(v * float64(len(l.colors)-1)))
	return l.colors[idx]
}

// RampStop is a (threshold, color) control point of a piecewise-linear ramp.
type RampStop struct {
	T     float64
	Color color.RGBA
}

// ColorRamp interpolates linearly between ordered control points; values
// below the first stop or above the last clamp to the end colors.
type ColorRamp struct {
	stops []RampStop
}

// NewColorRamp wraps ordered ramp stops. Empty input falls back to the
// default biome ramp.
func NewColorRamp(stops []RampStop) *ColorRamp {
	if len(stops) == 0 {
		stops = DefaultBiomeRamp()
	}
	return &ColorRamp{stops: stops}
}

// Map implements ColorMapper.
func (r *ColorRamp) Map(v float64) color.RGBA {
	v = clamp01(v)
	if v <= r.stops[0].T {
		return r.stops[0].Color
	}
	for i := 1; i < len(r.stops); i++ {
		curr := r.stops[i]
		if v <= curr.T {
			prev := r.stops[i-1]
			span := curr.T - prev.T
			var local float64
			if span > 0 {
				local = (v - prev.T) / span
			}
			return lerpRGBA(prev.Color, curr.Color, local)
		}
	}
	return r.stops[len(r.stops)-1].Color
}

// DefaultElevationLUT returns the 8-entry discrete elevation palette,
// luminance-monotonic from deep water to peak snow.
func DefaultElevationLUT() []color.RGBA {
	return []color.RGBA{
		{R: 30, G: 50, B: 110, A: 255},
		{R: 50, G: 90, B: 150, A: 255},
		{R: 70, G: 125, B: 105, A: 255},
		{R: 90, G: 150, B: 100, A: 255},
		{R: 140, G: 155, B: 90, A: 255},
		{R: 190, G: 160, B: 80, A: 255},
		{R: 215, G: 195, B: 150, A: 255},
		{R: 240, G: 235, B: 215, A: 255},
	}
}

// DefaultBiomeRamp returns the smooth biome ramp: ocean through beach,
// grassland, forest, mountain rock and snow, keyed by elevation.
func DefaultBiomeRamp() []RampStop {
	return []RampStop{
		{T: 0.00, Color: color.RGBA{R: 0, G: 75, B: 115, A: 255}},
		{T: 0.38, Color: color.RGBA{R: 0, G: 105, B: 148, A: 255}},
		{T: 0.44, Color: color.RGBA{R: 238, G: 214, B: 175, A: 255}},
		{T: 0.52, Color: color.RGBA{R: 124, G: 200, B: 64, A: 255}},
		{T: 0.66, Color: color.RGBA{R: 34, G: 139, B: 34, A: 255}},
		{T: 0.82, Color: color.RGBA{R: 139, G: 137, B: 137, A: 255}},
		{T: 1.00, Color: color.RGBA{R: 255, G: 250, B: 250, A: 255}},
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
