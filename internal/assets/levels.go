package assets

import (
	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// Level is a named, ready-to-play grid plus the spawn pose new players
// start at.
type Level struct {
	Name  string
	Grid  *world.Grid
	Spawn world.Pose
}

func spawnFacingNorth(e, n float64) world.Pose {
	return world.Pose{
		Position:  vector.Vector{E: e, N: n},
		Direction: vector.Vector{E: 0, N: 1},
	}
}

// TestRoom is the same 4x4 bordered room the engine's property and scenario
// tests build for themselves: border cells are value 1, interior is empty.
func TestRoom() Level {
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
	return Level{
		Name:  "test-room",
		Grid:  world.NewGrid(4, 4, cells),
		Spawn: spawnFacingNorth(2.0, 2.0),
	}
}

// Corridor is a larger hand-authored level: an 8x12 map with a perimeter
// wall, an interior partition with a single doorway, and two single-cell
// pillars, cell value 2 reserved for the partition wall and 3 for pillars.
func Corridor() Level {
	const w, h = 8, 12
	cells := make([]byte, w*h)
	set := func(x, y int, v byte) { cells[(h-1-y)*w+x] = v }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0)
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				v = 1
			}
			set(x, y, v)
		}
	}

	// Partition wall across the middle, with a doorway at x=4.
	for x := 1; x < w-1; x++ {
		if x == 4 {
			continue
		}
		set(x, h/2, 2)
	}

	set(2, 3, 3)
	set(5, 8, 3)

	return Level{
		Name:  "corridor",
		Grid:  world.NewGrid(w, h, cells),
		Spawn: spawnFacingNorth(1.5, 1.5),
	}
}

// Named looks up a built-in level by name, returning ok=false if none
// matches.
func Named(name string) (Level, bool) {
	switch name {
	case "test-room":
		return TestRoom(), true
	case "corridor":
		return Corridor(), true
	default:
		return Level{}, false
	}
}
