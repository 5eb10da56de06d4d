package render

import "raywalk/internal/world"

// DrawColumn blits one vertical texel strip of t into framebuffer column x,
// stretched to span [yHigh, yLow) in screen space, sampling the texture
// column at texCol (normalized to [0, 1)). transparency, when set, skips
// chroma-keyed texels instead of drawing them (used for sprites).
//
// yHigh may be negative when a wall projects taller than the screen; the
// texel stride still advances through the clipped portion so the visible
// part samples the correct region of the texture.
func DrawColumn(fb *Framebuffer, t world.Texture, x, yHigh, yLow int, texCol float64, transparency bool) {
	ylen := yLow - yHigh
	if ylen < 1 || yLow < 0 {
		return
	}
	if x < 0 || x >= Width {
		return
	}

	tx := int(texCol * float64(t.Width-1))
	tyStride := float64(t.Height-1) / float64(ylen)

	ty := 0.0
	if yHigh < 0 {
		ty = (-float64(yHigh) / float64(ylen)) * float64(t.Height-1)
		yHigh = 0
	}
	if yLow > Height {
		yLow = Height
	}

	for y := yHigh; y < yLow; y++ {
		r, g, b := t.At(tx, int(ty))
		ty += tyStride
		if transparency && world.IsChromaKey(r, g, b) {
			continue
		}
		fb.Set(x, y, r, g, b)
	}
}
