package engine

import (
	"math"

	"raywalk/internal/collision"
	"raywalk/internal/vector"
)

// WalkSpeed is the forward/backward movement speed in world-units/sec.
const WalkSpeed = 1.25

// TurnSpeedDegrees is the rotation speed in degrees/sec.
const TurnSpeedDegrees = 45.0

// Update advances state by dtSeconds using the held keys in input: W/S
// drive forward/backward displacement through the collision slider, A/D
// rotate the facing direction. scene.Grid must be the same grid state.Pose
// was last resolved against.
func Update(dtSeconds float64, input InputSnapshot, scene *Scene, state *GameState) {
	forward := 0.0
	if input.Held(ScancodeW) {
		forward += 1
	}
	if input.Held(ScancodeS) {
		forward -= 1
	}

	disp := vector.Scale(state.Pose.Direction, WalkSpeed*forward*dtSeconds)
	state.Pose.Position = collision.Slide(state.Pose.Position, disp, scene.Grid)

	turn := 0.0
	if input.Held(ScancodeD) {
		turn += 1
	}
	if input.Held(ScancodeA) {
		turn -= 1
	}

	state.Pose.Direction = vector.Normalize(state.Pose.Direction)
	angle := TurnSpeedDegrees * turn * dtSeconds * math.Pi / 180.0
	state.Pose.Direction = vector.Rotate(state.Pose.Direction, angle)
}
