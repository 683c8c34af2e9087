//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a device pixel buffer into a reusable ebiten image and
// draws it. The image is recreated only when the buffer dimensions change.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates an empty painter; the image is created lazily.
func NewPainter() *Painter {
	return &Painter{}
}

// Blit uploads buf (RGBA, w*h device pixels) and draws it at the origin,
// scaled down by scale so device pixels land on the logical screen grid.
func (p *Painter) Blit(dst *ebiten.Image, buf []byte, w, h int, scale float64) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	if p.img == nil || p.w != w || p.h != h {
		p.img = ebiten.NewImage(w, h)
		p.w, p.h = w, h
	}
	p.img.WritePixels(buf[:4*w*h])

	op := &ebiten.DrawImageOptions{}
	if scale > 0 && scale != 1 {
		op.GeoM.Scale(1/scale, 1/scale)
	}
	dst.DrawImage(p.img, op)
}
