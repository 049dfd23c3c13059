package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("scales to unit mass", func(t *testing.T) {
		values := []float64{1, 3, 0, 4}

		ok := Normalize(values, nil)

		require.True(t, ok)
		require.Equal(t, []float64{0.125, 0.375, 0, 0.5}, values)
	})

	t.Run("zero mass falls back to uniform over eligible indices", func(t *testing.T) {
		values := []float64{0, 0, 0, 0}

		ok := Normalize(values, []int{1, 3})

		require.False(t, ok)
		require.Equal(t, []float64{0, 0.5, 0, 0.5}, values)
	})

	t.Run("zero mass without eligible indices stays zero", func(t *testing.T) {
		values := []float64{0, 0}

		require.False(t, Normalize(values, nil))
		require.Equal(t, []float64{0, 0}, values)
	})
}

func TestArgMax(t *testing.T) {
	require.Equal(t, -1, ArgMax([]int{}))
	require.Equal(t, 1, ArgMax([]int{2, 5, 5, 1}), "Ties should go to the first maximum")
	require.Equal(t, 2, ArgMax([]float64{-3, -2, -1}))
}
