package view

import "math"

// Default zoom bounds and wheel sensitivity for interactive use.
const (
	DefaultMinZoom   = 0.4
	DefaultMaxZoom   = 16.0
	DefaultWheelSens = 0.0015

	minZoomEpsilon    = 1e-9
	defaultPixelRatio = 1.0
	uninitializedZoom = 1.0
)

// Transform owns the pan/zoom view state and converts between screen (CSS
// pixel) and world coordinates. It is mutated only by the input controller
// and read by the rasterizer each frame.
type Transform struct {
	PanX, PanY float64
	Zoom       float64
	PixelRatio float64

	// Viewport dimensions in CSS pixels.
	W, H float64

	minZoom, maxZoom float64
	initialized      bool
}

// NewTransform creates a transform with the given zoom bounds. Bounds that
// are non-positive or inverted fall back to the defaults.
func NewTransform(minZoom, maxZoom float64) *Transform {
	if minZoom <= 0 || maxZoom <= 0 || maxZoom < minZoom {
		minZoom, maxZoom = DefaultMinZoom, DefaultMaxZoom
	}
	return &Transform{
		Zoom:       uninitializedZoom,
		PixelRatio: defaultPixelRatio,
		minZoom:    minZoom,
		maxZoom:    maxZoom,
	}
}

// Resize updates the viewport dimensions. The first call centers the world
// origin; subsequent calls shift the pan by half the dimension delta so the
// visual center stays put.
func (t *Transform) Resize(w, h float64) {
	if !t.initialized {
		t.W, t.H = w, h
		t.PanX = w / 2
		t.PanY = h / 2
		t.initialized = true
		return
	}
	t.PanX += (w - t.W) / 2
	t.PanY += (h - t.H) / 2
	t.W, t.H = w, h
}

// ScreenToWorld maps a CSS-pixel screen coordinate to world space.
func (t *Transform) ScreenToWorld(sx, sy float64) (float64, float64) {
	z := t.Zoom
	if z < minZoomEpsilon {
		z = minZoomEpsilon
	}
	return (sx - t.PanX) / z, (sy - t.PanY) / z
}

// WorldToScreen maps a world coordinate to CSS-pixel screen space.
func (t *Transform) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*t.Zoom + t.PanX, wy*t.Zoom + t.PanY
}

// ZoomAt sets the zoom level while keeping the world point currently under
// the focus coordinate stationary on screen.
func (t *Transform) ZoomAt(fx, fy, newZoom float64) {
	newZoom = t.clampZoom(newZoom)
	old := t.Zoom
	if old < minZoomEpsilon {
		old = minZoomEpsilon
	}
	ratio := newZoom / old
	t.PanX = fx - ratio*(fx-t.PanX)
	t.PanY = fy - ratio*(fy-t.PanY)
	t.Zoom = newZoom
}

// ZoomWheel applies a wheel delta as an exponential zoom step about the
// focus point: each unit of delta scales the zoom by 2^(-delta*sens).
func (t *Transform) ZoomWheel(fx, fy, delta, sens float64) {
	if sens <= 0 {
		sens = DefaultWheelSens
	}
	t.ZoomAt(fx, fy, t.Zoom*math.Pow(2, -delta*sens))
}

// Pan shifts the view by a CSS-pixel delta.
func (t *Transform) Pan(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}

// SetPixelRatio updates the device pixel ratio; non-positive values are
// ignored.
func (t *Transform) SetPixelRatio(r float64) {
	if r > 0 {
		t.PixelRatio = r
	}
}

// Snap rounds a CSS-pixel coordinate to the nearest device pixel so strokes
// do not shimmer across fractional pixel boundaries while panning.
func (t *Transform) Snap(v float64) float64 {
	return math.Round(v*t.PixelRatio) / t.PixelRatio
}

// DeviceSize returns the viewport dimensions in device pixels.
func (t *Transform) DeviceSize() (int, int) {
	return int(math.Round(t.W * t.PixelRatio)), int(math.Round(t.H * t.PixelRatio))
}

func (t *Transform) clampZoom(z float64) float64 {
	if math.IsNaN(z) || z < t.minZoom {
		return t.minZoom
	}
	if z > t.maxZoom {
		return t.maxZoom
	}
	return z
}
