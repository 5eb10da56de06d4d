package world

// ChromaKeyR, ChromaKeyG, ChromaKeyB are the exact magenta RGB triple that
// marks a sprite texel as transparent.
const (
	ChromaKeyR = 0xFF
	ChromaKeyG = 0x00
	ChromaKeyB = 0xFF
)

// MaxTextures is the capacity of a texture dictionary; index 0 is reserved
// ("empty cell") and never sampled.
const MaxTextures = 8

// MaxSprites is the capacity of a sprite dictionary.
const MaxSprites = 8

// Texture is a borrowed reference to an external RGB pixel buffer. The core
// only ever reads through a Texture; the caller must keep the backing
// Pixels slice alive for the duration of any render call that touches it.
type Texture struct {
	Pixels        []byte
	Width         int
	Height        int
	RowLength     int // stride in bytes between rows
	BytesPerPixel int
}

// At returns the RGB triple of the texel at (x, y), reading the first
// three bytes of the pixel — callers needing a different channel order
// should read Pixels directly.
func (t Texture) At(x, y int) (r, g, b byte) {
	off := y*t.RowLength + x*t.BytesPerPixel
	return t.Pixels[off], t.Pixels[off+1], t.Pixels[off+2]
}

// IsChromaKey reports whether (r, g, b) is the sprite transparency color.
func IsChromaKey(r, g, b byte) bool {
	return r == ChromaKeyR && g == ChromaKeyG && b == ChromaKeyB
}

// TextureDict maps a cell value in [1, MaxTextures) to its wall texture.
// Entry 0 is unused.
type TextureDict [MaxTextures]Texture

// SpriteDict maps a sprite id in [0, MaxSprites) to its billboard texture.
type SpriteDict [MaxSprites]Texture
