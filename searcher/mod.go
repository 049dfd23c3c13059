package searcher

import (
	"errors"
	"fmt"

	"gomoku/game"
)

// Hyperparameters for MCTS

const DefaultSimulations = 400
const DefaultCPuct = 5.0 // Exploration constant

const Win = 1.0   // Value of a won position for the player who moved into it
const Loss = -Win // Value of a lost position (negate from opponent perspective)
const Draw = 0.0

const DefaultRolloutWeight = 0.5
const MaxCutoff = 1 << 30

// EvaluationSource selects how a leaf value is estimated.
type EvaluationSource int

const (
	LearnedOnly EvaluationSource = iota
	LearnedWithRollout
)

func (s EvaluationSource) String() string {
	switch s {
	case LearnedWithRollout:
		return "learned+rollout"
	default:
		return "learned"
	}
}

// ParseEvaluationSource accepts the names printed by String.
func ParseEvaluationSource(name string) (EvaluationSource, error) {
	switch name {
	case "", "learned":
		return LearnedOnly, nil
	case "learned+rollout", "rollout":
		return LearnedWithRollout, nil
	}
	return LearnedOnly, fmt.Errorf("unknown evaluation source %q", name)
}

// Evaluator estimates move priors over every cell and the value of the
// board for the player to move. Implementations must not modify the board.
type Evaluator interface {
	Evaluate(b *game.Board) (priors []float64, value float64, err error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(b *game.Board) ([]float64, float64, error)

func (f EvaluatorFunc) Evaluate(b *game.Board) ([]float64, float64, error) {
	return f(b)
}

// ErrNoMoves is returned when a search is requested on a finished board.
var ErrNoMoves = errors.New("no moves available")

// EvaluatorError wraps a failed or malformed evaluation. The search
// recovers from it by backing up a neutral value.
type EvaluatorError struct {
	Err error
}

func (e *EvaluatorError) Error() string {
	return "evaluator failure: " + e.Err.Error()
}

func (e *EvaluatorError) Unwrap() error {
	return e.Err
}
