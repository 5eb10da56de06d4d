package engine

import (
	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// Scene is the borrowed, read-only record render and update are
// parameterized over: a grid plus the texture and sprite dictionaries it
// indexes into. The caller owns and keeps it alive for the duration of any
// call that takes it.
type Scene struct {
	Grid     *world.Grid
	Textures world.TextureDict
	Sprites  world.SpriteDict
}

// Placement is a placed, renderable instance of a sprite-dictionary entry.
type Placement struct {
	SpriteID int
	Position vector.Vector
}

var activeScene *Scene

// BindScene installs scene as the target of the package-level
// TextureDict/SpriteDict compatibility façade below. Only the demo host
// should call this, once, at startup; the core itself never reads
// activeScene.
func BindScene(scene *Scene) {
	activeScene = scene
}

// TextureDict is a compatibility façade over the global texture dictionary,
// standing in for the original firmware's process-wide r_texture_dict().
// Prefer passing a Scene explicitly; this exists only for callers that
// cannot thread one through.
func TextureDict() world.TextureDict {
	if activeScene == nil {
		return world.TextureDict{}
	}
	return activeScene.Textures
}

// SpriteDict is the sprite-dictionary analogue of TextureDict.
func SpriteDict() world.SpriteDict {
	if activeScene == nil {
		return world.SpriteDict{}
	}
	return activeScene.Sprites
}
