package raycast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"raywalk/internal/vector"
	"raywalk/internal/world"
)

// room4x4 mirrors world.room4x4: a 4x4 room with a wall border and an
// empty interior, used by every scenario in spec.md §8.
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

func TestCast_NorthWall(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 2.0, N: 2.0}
	end := vector.Vector{E: 2.0, N: 10.0}

	hit := Cast(g, start, end)

	require.NotZero(t, hit.Cell)
	require.Equal(t, 2, hit.CellX)
	require.Equal(t, 3, hit.CellY)
	require.InDelta(t, 2.0, hit.Point.E, 1e-9)
	require.InDelta(t, 3.0, hit.Point.N, 1e-9)
	require.InDelta(t, 0.0, hit.Normal.E, 1e-9)
	require.InDelta(t, -1.0, hit.Normal.N, 1e-9)
	require.InDelta(t, 1.0/8.0, hit.Fraction, 1e-9)
}

func TestCast_EastWall(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 2.0, N: 2.0}
	end := vector.Vector{E: 10.0, N: 2.0}

	hit := Cast(g, start, end)

	require.NotZero(t, hit.Cell)
	require.Equal(t, 3, hit.CellX)
	require.Equal(t, 2, hit.CellY)
	require.InDelta(t, 3.0, hit.Point.E, 1e-9)
	require.InDelta(t, 2.0, hit.Point.N, 1e-9)
	require.InDelta(t, -1.0, hit.Normal.E, 1e-9)
	require.InDelta(t, 0.0, hit.Normal.N, 1e-9)
	require.InDelta(t, 1.0/8.0, hit.Fraction, 1e-9)
}

func TestCast_MissReturnsZeroCellAndFractionOne(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 1.5, N: 1.5}
	end := vector.Vector{E: 2.5, N: 2.5}

	hit := Cast(g, start, end)

	require.Zero(t, hit.Cell)
	require.Equal(t, 1.0, hit.Fraction)
}

func TestCast_DiagonalHitsCorner(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 1.0, N: 1.0}
	end := vector.Vector{E: -5.0, N: -5.0}

	hit := Cast(g, start, end)

	require.NotZero(t, hit.Cell)
	require.True(t, hit.Fraction > 0 && hit.Fraction <= 1)
}

func TestCast_NormalIsAxisAligned(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 2.0, N: 2.0}
	cases := []vector.Vector{
		{E: 2.0, N: 10.0},
		{E: 10.0, N: 2.0},
		{E: 2.0, N: -10.0},
		{E: -10.0, N: 2.0},
	}
	for _, end := range cases {
		hit := Cast(g, start, end)
		n := hit.Normal
		nonZero := 0
		if n.E != 0 {
			nonZero++
		}
		if n.N != 0 {
			nonZero++
		}
		require.Equal(t, 1, nonZero, "normal must be axis-aligned")
	}
}

func TestCast_RayStartingOnGridLine(t *testing.T) {
	g := room4x4()
	start := vector.Vector{E: 1.0, N: 2.0}
	end := vector.Vector{E: 1.0, N: 10.0}

	hit := Cast(g, start, end)

	require.NotZero(t, hit.Cell)
	require.Equal(t, 1, hit.CellX)
	require.Equal(t, 3, hit.CellY)
}

func TestCast_PanicsOnCorruptGrid(t *testing.T) {
	cells := make([]byte, 4)
	require.Panics(t, func() {
		g := world.NewGrid(2, 2, cells)
		cells[0] = 9 // mutate the backing array past construction: cell (0, 1)
		Cast(g, vector.Vector{E: 0.5, N: 0.5}, vector.Vector{E: 0.5, N: 5})
	})
}
