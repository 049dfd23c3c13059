package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during
// evaluation. It always plays the most visited move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(b *game.Board) (int, []float64, metrics.SearchMetric, error) {
	action, policy, err := a.mcts.GetAction(b, 0)
	return action, policy, a.mcts.Metric(), err
}
