package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"
)

const DefaultTemperature = 1.0

type trainingAgent struct {
	mcts             *searcher.MCTS
	explorationPlies int
	temperature      float64
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples moves at the given temperature for the first explorationPlies
// plies of a game and plays greedily afterwards.
func NewTrainingAgent(mcts *searcher.MCTS, explorationPlies int, temperature float64) Agent {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return trainingAgent{mcts: mcts, explorationPlies: explorationPlies, temperature: temperature}
}

func (a trainingAgent) FindMove(b *game.Board) (int, []float64, metrics.SearchMetric, error) {
	action, policy, err := a.mcts.GetAction(b, a.temperatureAt(b.MoveCount()))
	return action, policy, a.mcts.Metric(), err
}

func (a trainingAgent) temperatureAt(ply int) float64 {
	if ply < a.explorationPlies {
		return a.temperature
	}
	return 0
}
