package engine

import (
	"testing"

	"gomoku/game"
	"gomoku/utils"

	"github.com/stretchr/testify/require"
)

func record(t *testing.T) Record {
	t.Helper()
	b := game.NewBoard(5, 2)
	require.NoError(t, b.ApplyMove(6))
	require.NoError(t, b.ApplyMove(7))

	policy := make([]float64, b.Cells())
	policy[1] = 0.25
	policy[11] = 0.75
	return Record{
		Observation: game.Observe(b),
		Policy:      policy,
		Mover:       game.PlayerA,
		Action:      11,
		Outcome:     1,
	}
}

func TestAugment(t *testing.T) {
	t.Run("eight variants with identity first", func(t *testing.T) {
		rec := record(t)

		variants := Augment(rec)

		require.Len(t, variants, 8)
		require.Equal(t, rec, variants[0])
	})

	t.Run("mass and labels are preserved", func(t *testing.T) {
		rec := record(t)

		for _, v := range Augment(rec) {
			require.InDelta(t, 1.0, utils.Sum(v.Policy), 1e-9)
			require.Equal(t, rec.Outcome, v.Outcome)
			require.Equal(t, rec.Mover, v.Mover)
			require.Equal(t, 0.75, v.Policy[v.Action], "Action should follow the policy")
			require.Equal(t, 1.0, utils.Sum(v.Observation.Planes[game.PlaneOwn]))
		}
	})

	t.Run("planes and policy move together", func(t *testing.T) {
		rec := record(t)

		for i, v := range Augment(rec) {
			sym := game.Symmetries[i]
			require.Equal(t, 1.0, v.Observation.Planes[game.PlaneOwn][sym.ApplyAction(6, 5)])
			require.Equal(t, 1.0, v.Observation.Planes[game.PlaneLastMove][sym.ApplyAction(7, 5)])
			require.Equal(t, 0.25, v.Policy[sym.ApplyAction(1, 5)])
		}
	})

	t.Run("input record is not modified", func(t *testing.T) {
		rec := record(t)
		before := Record{
			Observation: rec.Observation.Clone(),
			Policy:      append([]float64(nil), rec.Policy...),
			Mover:       rec.Mover,
			Action:      rec.Action,
			Outcome:     rec.Outcome,
		}

		Augment(rec)

		require.Equal(t, before, rec)
	})

	t.Run("policy without mass becomes uniform over empty cells", func(t *testing.T) {
		rec := record(t)
		rec.Policy = make([]float64, len(rec.Policy))

		for _, v := range Augment(rec) {
			require.InDelta(t, 1.0, utils.Sum(v.Policy), 1e-9)
			for cell, p := range v.Policy {
				occupied := v.Observation.Planes[game.PlaneOwn][cell]+v.Observation.Planes[game.PlaneOpponent][cell] > 0
				if occupied {
					require.Zero(t, p)
				} else {
					require.InDelta(t, 1.0/23, p, 1e-9)
				}
			}
		}
	})
}

func TestAugmentGame(t *testing.T) {
	g := Game{Records: []Record{record(t), record(t)}}

	require.Len(t, AugmentGame(g), 16)
}
