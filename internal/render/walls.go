package render

import (
	"math"

	"raywalk/internal/raycast"
	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// WallHeightScale sets the apparent height of a wall one unit away from the
// camera, in screen pixels.
const WallHeightScale = 2.2 * Height / 2

// maxRayDistance bounds how far a wall ray is cast before being treated as
// a miss; walls in any level built for this engine sit well inside it.
const maxRayDistance = 100.0

// RenderWalls casts one ray per framebuffer column from pose through grid,
// projects the hit into a wall strip, and records each column's camera-space
// depth into depth for later sprite occlusion. It assumes fb has already
// been cleared with FillBackground.
func RenderWalls(fb *Framebuffer, depth *DepthBuffer, pose world.Pose, grid *world.Grid, textures world.TextureDict) {
	fovRad := FOVDegrees * math.Pi / 180.0
	step := fovRad / Width

	angle := -fovRad / 2
	for column := 0; column < Width; column++ {
		ray := vector.Rotate(pose.Direction, angle)
		angle += step

		target := vector.Add(pose.Position, vector.Scale(ray, maxRayDistance))
		hit := raycast.Cast(grid, pose.Position, target)

		if hit.Cell == 0 {
			depth.Depth[column] = math.Inf(1)
			continue
		}

		dx := vector.Sub(hit.Point, pose.Position)
		dist := vector.Dot(dx, pose.Direction)
		depth.Depth[column] = dist

		height := WallHeightScale / dist
		if height > 50*WallHeightScale {
			continue
		}

		yHigh := Height/2 - int(height/2)
		yLow := Height/2 + int(height/2)

		var texCol float64
		if hit.Normal.E != 0 {
			texCol = hit.Point.N - math.Floor(hit.Point.N)
		} else {
			texCol = hit.Point.E - math.Floor(hit.Point.E)
		}

		DrawColumn(fb, textures[hit.Cell], column, yHigh, yLow, texCol, false)
	}
}
