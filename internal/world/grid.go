// Package world holds the data the raycasting core reads but never owns:
// the grid of cells, the player pose, and the texture/sprite dictionaries.
package world

import "fmt"

// MaxCellValue is the largest legal cell byte; 0 means empty, [1, MaxCellValue]
// are opaque walls that also index into the texture dictionary.
const MaxCellValue = 7

// Grid is an immutable rectangular array of cells. Cell (x, y) in engine
// coordinates — y=0 at the south edge — is stored at array row H-1-y, i.e.
// the backing buffer is row-major with the north row first.
type Grid struct {
	width, height int
	cells         []byte
}

// NewGrid builds a Grid from a row-major, north-row-first byte buffer.
// It panics if the buffer length doesn't match w*h or any cell value falls
// outside [0, MaxCellValue] — a corrupt world is a fatal precondition
// violation, not a recoverable error (spec.md §7).
func NewGrid(w, h int, cells []byte) *Grid {
	if len(cells) != w*h {
		panic(fmt.Sprintf("world: grid buffer length %d does not match %d*%d", len(cells), w, h))
	}
	for _, c := range cells {
		if c > MaxCellValue {
			panic(fmt.Sprintf("world: cell value %d outside [0, %d]", c, MaxCellValue))
		}
	}
	return &Grid{width: w, height: h, cells: cells}
}

// Width returns the grid's width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the cell value at engine coordinates (x, y). Callers outside
// the raycaster should bounds-check first; this indexes directly into the
// row H-1-y without a bounds check, matching the raycaster's own leniency
// contract (spec.md §4.2 step 7 does the bounds check before calling this).
func (g *Grid) At(x, y int) byte {
	return g.cells[(g.height-1-y)*g.width+x]
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
