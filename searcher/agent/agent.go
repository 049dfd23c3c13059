package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
)

type Agent interface {
	// FindMove returns the chosen action, the move distribution over every
	// cell and the search metrics of the decision
	FindMove(b *game.Board) (action int, policy []float64, metric metrics.SearchMetric, err error)
}
