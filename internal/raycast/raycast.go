// Package raycast implements the grid-traversal raycaster: an
// Amanatides-Woo digital differential analyzer (DDA) over a world.Grid
// that finds the first non-empty cell a ray crosses.
package raycast

import (
	"math"

	"raywalk/internal/vector"
	"raywalk/internal/world"
)

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Hit is the aggregate result of a Cast call, replacing the original
// firmware's out-parameter list (spec.md §9) with a single value. A miss is
// reported as Cell == 0 with Fraction == 1 — Cast never returns an "absent"
// sentinel, by design (see the zero-hit/f=1 dual encoding decision in
// DESIGN.md); callers branch on Cell == 0, not on Fraction.
type Hit struct {
	Cell     byte          // cell value hit, 0 if no wall was hit
	Point    vector.Vector // exact world-space hit point
	CellX    int           // hit cell's x index
	CellY    int           // hit cell's y index
	Normal   vector.Vector // outward face normal, ±1 on one axis and 0 on the other
	Fraction float64       // fraction of (end-start) travelled, in [0, 1]
}

// Cast traces a ray from start to end through grid and returns the first
// non-empty cell it crosses, or a Hit with Cell == 0 if none is hit before
// reaching end.
func Cast(grid *world.Grid, start, end vector.Vector) Hit {
	dx := end.E - start.E
	dy := end.N - start.N
	stepX := signum(dx)
	stepY := signum(dy)

	// tDelta is the fraction of travel needed to cross one full cell along
	// an axis. When an axis's delta is zero, dividing by it gives 0/0 (NaN),
	// not the ±Inf the traversal relies on to always lose the tMax
	// comparison — force it to +Inf explicitly in that case.
	var tDeltaX, tDeltaY float64
	if dx == 0 {
		tDeltaX = math.Inf(1)
	} else {
		tDeltaX = stepX / dx
	}
	if dy == 0 {
		tDeltaY = math.Inf(1)
	} else {
		tDeltaY = stepY / dy
	}

	var fbX float64
	if dx >= 0 {
		fbX = math.Ceil(start.E)
	} else {
		fbX = math.Floor(start.E)
	}
	var fbY float64
	if dy >= 0 {
		fbY = math.Ceil(start.N)
	} else {
		fbY = math.Floor(start.N)
	}
	dfX := fbX - start.E
	dfY := fbY - start.N

	// A zero dfX/dfY means the ray starts exactly on a grid line; treat it
	// as if a whole cell still needs crossing in that axis before the next
	// boundary (spec.md §4.2 step 3).
	numX := dfX
	if numX == 0 {
		numX = stepX
	}
	numY := dfY
	if numY == 0 {
		numY = stepY
	}

	var tMaxX, tMaxY float64
	if dx == 0 {
		tMaxX = math.Inf(1)
	} else {
		tMaxX = numX / dx
	}
	if dy == 0 {
		tMaxY = math.Inf(1)
	} else {
		tMaxY = numY / dy
	}

	x := int(math.Floor(start.E))
	y := int(math.Floor(start.N))
	var nx, ny float64

	for dist := 0.0; dist <= 1.0; {
		if tMaxX < tMaxY {
			dist = tMaxX
			tMaxX += tDeltaX
			x += int(stepX)
			nx, ny = stepX, 0
		} else {
			dist = tMaxY
			tMaxY += tDeltaY
			y += int(stepY)
			nx, ny = 0, stepY
		}
		if dist > 1.0 {
			break
		}

		if !grid.InBounds(x, y) {
			// The ray may re-enter the grid later; a strict bounds
			// termination here would drop columns whose rays graze the
			// map edge (spec.md §4.2 step 7).
			continue
		}

		cell := grid.At(x, y)
		if cell > world.MaxCellValue {
			panic("raycast: corrupt grid, cell value outside [0, 7]")
		}
		if cell > 0 {
			return Hit{
				Cell:     cell,
				Point:    vector.Vector{E: start.E + dx*dist, N: start.N + dy*dist},
				CellX:    x,
				CellY:    y,
				Normal:   vector.Vector{E: -nx, N: -ny},
				Fraction: dist,
			}
		}
	}

	return Hit{Cell: 0, Fraction: 1}
}
