package engine

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
)

// Record is one ply of a finished game, usable as a training sample.
type Record struct {
	Observation game.Observation
	Policy      []float64 // move distribution over every cell
	Mover       game.Player
	Action      int
	Outcome     float64 // final result from Mover's perspective
}

// Game is the trajectory of one finished game.
type Game struct {
	ID      string
	Winner  game.Player // Empty for a draw or a game stopped at the ply bound
	Board   *game.Board
	Records []Record
	Moves   []metrics.MoveMetric
	Metric  metrics.GameMetric
}
