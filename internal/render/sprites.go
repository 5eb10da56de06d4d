package render

import (
	"math"

	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// SpriteHeightScale sets a billboard's apparent height one unit away from
// the camera, in screen pixels.
const SpriteHeightScale = Height / 2

// SpriteWidth is a billboard's world-space width.
const SpriteWidth = 1.0

// minSpriteDistance is the closest a sprite may be to the camera before it
// is skipped outright — avoids the division blowing up behind the player.
const minSpriteDistance = 0.1

// RenderSprite projects t, anchored at spritePos, as a camera-facing
// billboard and draws it into fb column-by-column, depth-tested against
// depth so walls in front of it occlude it.
//
// The texel column advances on every depth-culled column but NOT on
// columns clipped off the left edge (x < 0) — a left-clipped sprite
// resumes its texture at a shifted column once it re-enters the visible
// screen. That asymmetry is inherited unchanged from the projection this
// is ported from; it is intentionally preserved, not a bug to fix.
func RenderSprite(fb *Framebuffer, depth *DepthBuffer, t world.Texture, pose world.Pose, spritePos vector.Vector) {
	dx := vector.Sub(spritePos, pose.Position)
	tangent := vector.Vector{E: pose.Direction.N, N: -pose.Direction.E}

	dist := vector.Dot(dx, pose.Direction)
	east := vector.Dot(dx, tangent)

	if dist < minSpriteDistance {
		return
	}

	s := (float64(Width) / 2) / math.Tan(FOVDegrees*math.Pi/180.0/2)

	xRight := Width/2 + int(s*(east+SpriteWidth*0.5)/dist)
	xLeft := Width/2 + int(s*(east-SpriteWidth*0.5)/dist)
	if xRight <= xLeft {
		return
	}
	txStride := 1.0 / float64(xRight-xLeft)
	height := SpriteHeightScale / dist

	txColumn := 0.0
	for x := xLeft; x < xRight; x++ {
		if x >= Width {
			break
		}
		if x < 0 {
			continue
		}
		if dist > depth.Depth[x] {
			txColumn += txStride
			continue
		}
		yHigh := int(float64(Height)/2 - height/2)
		yLow := int(float64(Height)/2 + height/2)
		DrawColumn(fb, t, x, yHigh, yLow, txColumn, true)
		txColumn += txStride
	}
}
