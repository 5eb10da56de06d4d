// Package assets turns on-disk or generated pixel data into the
// world.Texture records the core reads, plus a small set of named built-in
// levels.
package assets

import (
	"fmt"
	"image/png"
	"os"

	"raywalk/internal/world"
)

// LoadPNG decodes the PNG at path into a tightly packed RGB world.Texture.
// Pixels with alpha below half, or exactly matching the chroma key, are
// normalized to chroma key on load so the renderer's own chroma-key check
// needs no alpha channel at draw time.
func LoadPNG(path string) (world.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return world.Texture{}, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return world.Texture{}, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	const bpp = 3
	rowLength := w * bpp
	pixels := make([]byte, rowLength*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r8, g8, b8 := byte(r>>8), byte(g>>8), byte(b>>8)

			off := y*rowLength + x*bpp
			if a < 0x8000 {
				pixels[off] = world.ChromaKeyR
				pixels[off+1] = world.ChromaKeyG
				pixels[off+2] = world.ChromaKeyB
				continue
			}
			pixels[off] = r8
			pixels[off+1] = g8
			pixels[off+2] = b8
		}
	}

	return world.Texture{
		Pixels:        pixels,
		Width:         w,
		Height:        h,
		RowLength:     rowLength,
		BytesPerPixel: bpp,
	}, nil
}
