package engine

import "raywalk/internal/world"

// GameState is the mutable per-frame state Update advances in place: the
// player's pose plus the sprites currently placed in the scene.
type GameState struct {
	Pose       world.Pose
	Placements []Placement
}
