package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func grid(size int) []float64 {
	g := make([]float64, size*size)
	for i := range g {
		g[i] = float64(i)
	}
	return g
}

func TestSymmetry(t *testing.T) {
	t.Run("eight distinct transforms with identity first", func(t *testing.T) {
		require.Len(t, Symmetries, 8)
		require.Equal(t, grid(3), Symmetries[0].Apply(grid(3), 3))

		seen := map[[9]float64]bool{}
		for _, s := range Symmetries {
			var key [9]float64
			copy(key[:], s.Apply(grid(3), 3))
			seen[key] = true
		}
		require.Len(t, seen, 8, "Every transform of an asymmetric grid should differ")
	})

	t.Run("quarter turn counter-clockwise", func(t *testing.T) {
		rotated := Symmetry{Rotations: 1}.Apply(grid(3), 3)

		require.Equal(t, []float64{2, 5, 8, 1, 4, 7, 0, 3, 6}, rotated)
	})

	t.Run("horizontal flip", func(t *testing.T) {
		flipped := Symmetry{Flip: true}.Apply(grid(3), 3)

		require.Equal(t, []float64{2, 1, 0, 5, 4, 3, 8, 7, 6}, flipped)
	})

	t.Run("four quarter turns are the identity", func(t *testing.T) {
		g := grid(5)
		for i := 0; i < 4; i++ {
			g = Symmetry{Rotations: 1}.Apply(g, 5)
		}

		require.Equal(t, grid(5), g)
	})

	t.Run("actions follow the grid", func(t *testing.T) {
		size := 5
		for _, s := range Symmetries {
			for action := 0; action < size*size; action++ {
				oneHot := make([]float64, size*size)
				oneHot[action] = 1

				transformed := s.Apply(oneHot, size)

				require.Equal(t, 1.0, transformed[s.ApplyAction(action, size)], "Symmetry %+v should map %d consistently", s, action)
			}
		}
	})

	t.Run("input grid is not modified", func(t *testing.T) {
		g := grid(3)

		Symmetry{Rotations: 3, Flip: true}.Apply(g, 3)

		require.Equal(t, grid(3), g)
	})
}
