package render

import (
	"math"

	"terraview/internal/terrain"
	"terraview/internal/view"
)

// Rasterizer inverse-maps every device pixel through the viewport transform,
// samples an elevation source and writes RGBA quads into an owned pixel
// buffer. The buffer is reallocated only when the device dimensions change.
type Rasterizer struct {
	buf  []byte
	w, h int
}

// NewRasterizer creates an empty rasterizer; the buffer is allocated on the
// first Render call.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Render fills the pixel buffer for the current view. shade may be nil to
// skip hillshading; when present it is sampled per world cell and blended at
// the given strength. The returned slice is owned by the rasterizer and
// valid until the next Render with different dimensions.
func (r *Rasterizer) Render(src terrain.Source, mapper ColorMapper, vt *view.Transform, shade *terrain.Shading, strength float64) []byte {
	dw, dh := vt.DeviceSize()
	r.ensure(dw, dh)
	if dw <= 0 || dh <= 0 {
		return r.buf
	}

	pr := vt.PixelRatio
	for y := 0; y < dh; y++ {
		sy := float64(y) / pr
		for x := 0; x < dw; x++ {
			sx := float64(x) / pr
			wx, wy := vt.ScreenToWorld(sx, sy)
			c := mapper.Map(src.Sample(wx, wy))
			if shade != nil {
				f := terrain.ShadeFactor(shade.At(int(math.Floor(wx)), int(math.Floor(wy))), strength)
				c.R = scaleComponent(c.R, f)
				c.G = scaleComponent(c.G, f)
				c.B = scaleComponent(c.B, f)
			}
			base := (y*dw + x) * 4
			r.buf[base+0] = c.R
			r.buf[base+1] = c.G
			r.buf[base+2] = c.B
			r.buf[base+3] = c.A
		}
	}
	return r.buf
}

// Buffer exposes the current pixel buffer and its device dimensions.
func (r *Rasterizer) Buffer() ([]byte, int, int) {
	return r.buf, r.w, r.h
}

func (r *Rasterizer) ensure(w, h int) {
	if w == r.w && h == r.h && r.buf != nil {
		return
	}
	r.w, r.h = w, h
	n := 4 * w * h
	if n < 0 {
		n = 0
	}
	r.buf = make([]byte, n)
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
