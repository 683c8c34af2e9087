package render

import (
	"image/color"
	"math"

	"terraview/internal/view"
)

// Overlay defaults: grid lines every 4 tiles of 32 world units, half-opaque
// so terrain stays readable underneath.
const (
	DefaultTileSize     = 32.0
	DefaultGridInterval = 4
	crosshairArmCSS     = 12.0
)

// Overlay draws non-raster decorations over the pixel buffer: axis-aligned
// grid lines at a fixed world spacing and a crosshair centered in the
// viewport. All coordinates are snapped to device pixels before drawing so
// lines do not shimmer during pan.
type Overlay struct {
	TileSize float64
	Interval int

	ShowGrid      bool
	ShowCrosshair bool

	GridColor  color.RGBA
	CrossColor color.RGBA
}

// NewOverlay returns an overlay with the default spacing and colors.
func NewOverlay() *Overlay {
	return &Overlay{
		TileSize:      DefaultTileSize,
		Interval:      DefaultGridInterval,
		ShowGrid:      true,
		ShowCrosshair: true,
		GridColor:     color.RGBA{R: 255, G: 255, B: 255, A: 90},
		CrossColor:    color.RGBA{R: 255, G: 80, B: 80, A: 200},
	}
}

// Draw blends the enabled decorations into buf, which must be the device
// pixel buffer for the current viewport.
func (o *Overlay) Draw(buf []byte, vt *view.Transform) {
	dw, dh := vt.DeviceSize()
	if dw <= 0 || dh <= 0 || len(buf) < 4*dw*dh {
		return
	}
	if o.ShowGrid {
		o.drawGrid(buf, dw, dh, vt)
	}
	if o.ShowCrosshair {
		o.drawCrosshair(buf, dw, dh, vt)
	}
}

func (o *Overlay) drawGrid(buf []byte, dw, dh int, vt *view.Transform) {
	spacing := o.TileSize * float64(o.Interval)
	if spacing <= 0 {
		return
	}
	lw := lineWidth(vt.PixelRatio)
	// Skip the grid entirely when lines would pack tighter than twice their
	// own width; a solid overlay communicates nothing.
	if spacing*vt.Zoom*vt.PixelRatio < 2*float64(lw) {
		return
	}

	left, top := vt.ScreenToWorld(0, 0)
	right, bottom := vt.ScreenToWorld(vt.W, vt.H)

	for wx := math.Ceil(left/spacing) * spacing; wx <= right; wx += spacing {
		sx, _ := vt.WorldToScreen(wx, 0)
		x := deviceRound(vt.Snap(sx), vt.PixelRatio)
		blendVLine(buf, dw, dh, x, lw, o.GridColor)
	}
	for wy := math.Ceil(top/spacing) * spacing; wy <= bottom; wy += spacing {
		_, sy := vt.WorldToScreen(0, wy)
		y := deviceRound(vt.Snap(sy), vt.PixelRatio)
		blendHLine(buf, dw, dh, y, lw, o.GridColor)
	}
}

func (o *Overlay) drawCrosshair(buf []byte, dw, dh int, vt *view.Transform) {
	lw := lineWidth(vt.PixelRatio)
	cx := deviceRound(vt.Snap(vt.W/2), vt.PixelRatio)
	cy := deviceRound(vt.Snap(vt.H/2), vt.PixelRatio)
	arm := int(math.Round(crosshairArmCSS * vt.PixelRatio))

	blendRect(buf, dw, dh, cx-arm, cy, cx+arm+lw, cy+lw, o.CrossColor)
	blendRect(buf, dw, dh, cx, cy-arm, cx+lw, cy+arm+lw, o.CrossColor)
}

// lineWidth compensates for the pixel ratio so strokes keep the same
// apparent thickness on high-density displays.
func lineWidth(pixelRatio float64) int {
	lw := int(math.Round(pixelRatio))
	if lw < 1 {
		lw = 1
	}
	return lw
}

// deviceRound converts a snapped CSS coordinate to a device pixel index.
func deviceRound(css, pixelRatio float64) int {
	return int(math.Round(css * pixelRatio))
}

func blendVLine(buf []byte, dw, dh, x, width int, c color.RGBA) {
	blendRect(buf, dw, dh, x, 0, x+width, dh, c)
}

func blendHLine(buf []byte, dw, dh, y, width int, c color.RGBA) {
	blendRect(buf, dw, dh, 0, y, dw, y+width, c)
}
