package render

import "image/color"

// blendRect composites c over the RGBA buffer inside the half-open device
// pixel rectangle [x0,x1)x[y0,y1), clipped to the buffer bounds. Alpha
// blending uses integer source-over so results are reproducible.
func blendRect(buf []byte, dw, dh, x0, y0, x1, y1 int, c color.RGBA) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > dw {
		x1 = dw
	}
	if y1 > dh {
		y1 = dh
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}
	a := uint32(c.A)
	for y := y0; y < y1; y++ {
		row := y * dw * 4
		for x := x0; x < x1; x++ {
			base := row + x*4
			buf[base+0] = blendComponent(buf[base+0], c.R, a)
			buf[base+1] = blendComponent(buf[base+1], c.G, a)
			buf[base+2] = blendComponent(buf[base+2], c.B, a)
			if buf[base+3] < c.A {
				buf[base+3] = c.A
			}
		}
	}
}

func blendComponent(dst, src uint8, alpha uint32) uint8 {
	return uint8((uint32(src)*alpha + uint32(dst)*(255-alpha) + 127) / 255)
}
