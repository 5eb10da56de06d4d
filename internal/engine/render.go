package engine

import "raywalk/internal/render"

// Render draws one frame of scene as seen from state.Pose into fb, using
// depth as scratch per-column depth state. fb and depth are caller-owned
// and reused frame to frame; Render always starts by repainting the
// background before casting any wall ray.
func Render(fb *render.Framebuffer, depth *render.DepthBuffer, scene *Scene, state *GameState) {
	fb.FillBackground()
	render.RenderWalls(fb, depth, state.Pose, scene.Grid, scene.Textures)

	for _, placement := range state.Placements {
		tex := scene.Sprites[placement.SpriteID]
		render.RenderSprite(fb, depth, tex, state.Pose, placement.Position)
	}
}
