// Package collision resolves a proposed displacement against a world.Grid,
// sliding movement along a wall instead of stopping it dead.
package collision

import (
	"raywalk/internal/raycast"
	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// Slide moves pos by disp through grid, sliding along any wall the direct
// path would cross instead of passing through it. When the path hits a wall,
// the result stops world.PlaneOffset short of that wall's plane. Only that
// first wall is resolved: a move that hits no wall (the raycast reports
// Cell == 0; its Fraction is not consulted) is taken in full, without
// checking how close its end point lies to a nearby wall.
func Slide(pos, disp vector.Vector, grid *world.Grid) vector.Vector {
	if disp.E == 0 && disp.N == 0 {
		return pos
	}

	target := vector.Add(pos, disp)
	hit := raycast.Cast(grid, pos, target)
	if hit.Cell == 0 {
		return target
	}

	// Push the wall plane back PlaneOffset along its normal and re-intersect
	// the original displacement against it: movement stops short of the
	// wall surface instead of tunnelling into it.
	d := -vector.Dot(hit.Normal, hit.Point) - world.PlaneOffset

	f, ok := vector.RayPlaneIntersect(hit.Normal, d, pos, disp)
	if !ok {
		return pos
	}

	return vector.Add(pos, vector.Scale(disp, f))
}
