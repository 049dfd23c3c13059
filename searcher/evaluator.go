package searcher

import (
	"fmt"
	"math"

	"gomoku/game"
)

// UniformEvaluator assigns equal priors to every cell and a neutral value.
type UniformEvaluator struct{}

func (UniformEvaluator) Evaluate(b *game.Board) ([]float64, float64, error) {
	priors := make([]float64, b.Cells())
	for i := range priors {
		priors[i] = 1 / float64(len(priors))
	}
	return priors, 0, nil
}

// HeuristicEvaluator derives priors from a softmax over the pattern
// scores of the player to move and values the board with
// game.EvaluateHeuristic.
type HeuristicEvaluator struct {
	// Temperature of the prior softmax, in score units
	Temperature float64
}

func NewHeuristicEvaluator() *HeuristicEvaluator {
	return &HeuristicEvaluator{Temperature: 500}
}

func (h *HeuristicEvaluator) Evaluate(b *game.Board) ([]float64, float64, error) {
	scores := game.HeuristicMap(b, b.ToMove())
	candidates := b.CandidateMoves()
	priors := make([]float64, b.Cells())

	best := math.Inf(-1)
	for _, action := range candidates {
		best = math.Max(best, scores[action])
	}
	temperature := h.Temperature
	if temperature <= 0 {
		temperature = 1
	}
	sum := 0.0
	for _, action := range candidates {
		priors[action] = math.Exp((scores[action] - best) / temperature)
		sum += priors[action]
	}
	if sum > 0 {
		for _, action := range candidates {
			priors[action] /= sum
		}
	}
	return priors, game.EvaluateHeuristic(b), nil
}

// safeEvaluate calls the evaluator and converts panics and malformed
// output into an *EvaluatorError.
func safeEvaluate(e Evaluator, b *game.Board) (priors []float64, value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			priors, value = nil, 0
			err = &EvaluatorError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	priors, value, err = e.Evaluate(b)
	if err != nil {
		return nil, 0, &EvaluatorError{Err: err}
	}
	if len(priors) != b.Cells() {
		return nil, 0, &EvaluatorError{Err: fmt.Errorf("got %d priors for %d cells", len(priors), b.Cells())}
	}
	for i, p := range priors {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, 0, &EvaluatorError{Err: fmt.Errorf("invalid prior %v at %d", p, i)}
		}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, 0, &EvaluatorError{Err: fmt.Errorf("invalid value %v", value)}
	}
	return priors, math.Max(-1, math.Min(1, value)), nil
}
