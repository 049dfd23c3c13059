package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	t.Run("planes are seen from the player to move", func(t *testing.T) {
		b := NewBoard(9, 2)
		require.NoError(t, b.ApplyMove(40))
		require.NoError(t, b.ApplyMove(41))

		obs := Observe(b)

		require.Equal(t, 9, obs.Size)
		require.Len(t, obs.Planes, BasePlanes)
		require.Equal(t, 1.0, obs.Planes[PlaneOwn][40], "Player A is to move and owns 40")
		require.Equal(t, 1.0, obs.Planes[PlaneOpponent][41])
		require.Equal(t, 1.0, obs.Planes[PlaneLastMove][41])
		require.Equal(t, 1.0, obs.Planes[PlaneSideToMove][0])
		require.Equal(t, 1.0, sumPlane(obs.Planes[PlaneOwn]))
		require.Equal(t, 1.0, sumPlane(obs.Planes[PlaneLastMove]))
	})

	t.Run("side to move plane is zero for the second player", func(t *testing.T) {
		b := NewBoard(9, 2)
		require.NoError(t, b.ApplyMove(40))

		obs := Observe(b)

		require.Zero(t, sumPlane(obs.Planes[PlaneSideToMove]))
		require.Equal(t, 1.0, obs.Planes[PlaneOpponent][40])
		require.Zero(t, sumPlane(obs.Planes[PlaneOwn]))
	})

	t.Run("heuristic plane is scaled into the unit interval", func(t *testing.T) {
		b := NewBoard(9, 2)
		require.NoError(t, b.ApplyMove(40))

		obs := ObserveWithHeuristics(b)

		require.Len(t, obs.Planes, BasePlanes+1)
		best := 0.0
		for _, v := range obs.Planes[PlaneHeuristic] {
			require.GreaterOrEqual(t, v, 0.0)
			best = max(best, v)
		}
		require.Equal(t, 1.0, best)
	})

	t.Run("clone is independent", func(t *testing.T) {
		obs := Observe(NewBoard(5, 2))

		clone := obs.Clone()
		clone.Planes[PlaneOwn][0] = 1

		require.Zero(t, obs.Planes[PlaneOwn][0])
	})
}

func sumPlane(plane []float64) float64 {
	total := 0.0
	for _, v := range plane {
		total += v
	}
	return total
}
