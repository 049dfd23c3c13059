package agent

import (
	"testing"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newMCTS() *searcher.MCTS {
	return searcher.NewMCTS(
		searcher.WithSimulations(20),
		searcher.WithRand(rand.New(rand.NewSource(7))),
		searcher.WithMetrics(metrics.NewCollector()),
	)
}

func TestTrainingAgent(t *testing.T) {
	t.Run("samples during the exploration plies only", func(t *testing.T) {
		a := NewTrainingAgent(newMCTS(), 2, 0.7).(trainingAgent)

		require.Equal(t, 0.7, a.temperatureAt(0))
		require.Equal(t, 0.7, a.temperatureAt(1))
		require.Zero(t, a.temperatureAt(2), "Should play greedily after the exploration plies")
	})

	t.Run("non-positive temperature falls back to the default", func(t *testing.T) {
		a := NewTrainingAgent(newMCTS(), 2, 0).(trainingAgent)

		require.Equal(t, DefaultTemperature, a.temperatureAt(0))
	})

	t.Run("finds a candidate move with search metrics", func(t *testing.T) {
		b := game.NewBoard(9, 2)
		require.NoError(t, b.ApplyMove(40))

		action, policy, metric, err := NewTrainingAgent(newMCTS(), 10, 1).FindMove(b)

		require.NoError(t, err)
		require.True(t, b.IsCandidate(action))
		require.Len(t, policy, b.Cells())
		require.Equal(t, 20, metric.Simulations)
	})
}

func TestEvaluationAgent(t *testing.T) {
	b := game.NewBoard(9, 2)
	require.NoError(t, b.ApplyMove(40))

	action, policy, _, err := NewEvaluationAgent(newMCTS()).FindMove(b)

	require.NoError(t, err)
	require.Equal(t, 1.0, policy[action], "Evaluation agent should play the most visited move")
}
