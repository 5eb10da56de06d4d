// Package render rasterizes a world.Grid and its sprites into an ARGB32
// framebuffer from a player pose, by straight port of the firmware's
// column-fan raycaster to a slice-backed buffer.
package render

import "math"

// Width and Height are the fixed framebuffer dimensions the core always
// renders at; the demo host scales the result up for display.
const (
	Width  = 240
	Height = 320
	Bpp    = 4
)

// FOVDegrees is the horizontal field of view of the column fan.
const FOVDegrees = 60.0

// Framebuffer is an ARGB32 pixel buffer, one uint32 (0xAARRGGBB) per pixel,
// row-major with row 0 at the top of the screen.
type Framebuffer struct {
	Pixels []uint32
}

// NewFramebuffer allocates a Framebuffer sized Width x Height.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{Pixels: make([]uint32, Width*Height)}
}

func argb(r, g, b byte) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Set writes a pixel, silently clipping if (x, y) is out of bounds — mirrors
// the column drawer's own clipping instead of compounding it with panics.
func (f *Framebuffer) Set(x, y int, r, g, b byte) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	f.Pixels[y*Width+x] = argb(r, g, b)
}

// FillBackground paints the sky/floor split the original firmware uses: sky
// blue over the top half, floor grey over the bottom half.
func (f *Framebuffer) FillBackground() {
	sky := argb(10, 169, 216)
	floor := argb(108, 108, 108)
	half := Height / 2
	for y := 0; y < half; y++ {
		row := f.Pixels[y*Width : y*Width+Width]
		for x := range row {
			row[x] = sky
		}
	}
	for y := half; y < Height; y++ {
		row := f.Pixels[y*Width : y*Width+Width]
		for x := range row {
			row[x] = floor
		}
	}
}

// DepthBuffer holds one camera-space depth value per framebuffer column,
// used for sprite occlusion against walls.
type DepthBuffer struct {
	Depth [Width]float64
}

// NewDepthBuffer returns a DepthBuffer with every column set to +Inf, the
// "nothing hit" sentinel.
func NewDepthBuffer() *DepthBuffer {
	d := &DepthBuffer{}
	for i := range d.Depth {
		d.Depth[i] = math.Inf(1)
	}
	return d
}
