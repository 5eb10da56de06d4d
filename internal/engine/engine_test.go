package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"raywalk/internal/vector"
	"raywalk/internal/world"
)

func room4x4() *world.Grid {
	cells := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := byte(0)
			if x == 0 || x == 3 || y == 0 || y == 3 {
				v = 1
			}
			cells[(4-1-y)*4+x] = v
		}
	}
	return world.NewGrid(4, 4, cells)
}

func heldInput(codes ...Scancode) InputSnapshot {
	var in InputSnapshot
	for _, c := range codes {
		in[c] = 1
	}
	return in
}

func TestUpdate_DirectionStaysUnitLength(t *testing.T) {
	scene := &Scene{Grid: room4x4()}
	state := &GameState{Pose: world.Pose{
		Position:  vector.Vector{E: 2.0, N: 2.0},
		Direction: vector.Vector{N: 1, E: 0},
	}}

	in := heldInput(ScancodeW, ScancodeD)
	for i := 0; i < 20; i++ {
		Update(0.1, in, scene, state)
		length := math.Hypot(state.Pose.Direction.N, state.Pose.Direction.E)
		require.InDelta(t, 1.0, length, 0.01)
	}
}

func TestUpdate_NoWallPenetration(t *testing.T) {
	scene := &Scene{Grid: room4x4()}
	state := &GameState{Pose: world.Pose{
		Position:  vector.Vector{E: 2.0, N: 2.0},
		Direction: vector.Vector{N: 1, E: 0},
	}}

	in := heldInput(ScancodeW)
	for i := 0; i < 10; i++ {
		Update(1.0, in, scene, state)
	}

	require.Less(t, state.Pose.Position.N, 3.0-world.PlaneOffset+1e-9)
	require.Greater(t, state.Pose.Position.N, 2.0)
}

// At 45 degrees/sec, two 1-second frames of D held turn exactly 90 degrees,
// from facing north to facing east.
func TestUpdate_TurnRightTwoSecondsFacesEast(t *testing.T) {
	scene := &Scene{Grid: room4x4()}
	state := &GameState{Pose: world.Pose{
		Position:  vector.Vector{E: 2.0, N: 2.0},
		Direction: vector.Vector{N: 1, E: 0},
	}}

	in := heldInput(ScancodeD)
	for i := 0; i < 2; i++ {
		Update(1.0, in, scene, state)
	}

	require.InDelta(t, 1.0, state.Pose.Direction.E, 1e-3)
	require.InDelta(t, 0.0, state.Pose.Direction.N, 1e-3)
}

func TestBindScene_TextureDictFacade(t *testing.T) {
	scene := &Scene{Grid: room4x4()}
	scene.Textures[1] = world.Texture{Width: 1, Height: 1}
	BindScene(scene)
	defer BindScene(nil)

	require.Equal(t, scene.Textures, TextureDict())
	require.Equal(t, scene.Sprites, SpriteDict())
}

func TestTextureDict_NoBoundSceneReturnsZeroValue(t *testing.T) {
	BindScene(nil)
	require.Equal(t, world.TextureDict{}, TextureDict())
}
