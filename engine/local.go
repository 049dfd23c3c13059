package engine

import (
	"context"
	"fmt"
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

type Engine struct {
	size     int
	radius   int
	agents   []agent.Agent
	maxPlies int
	observe  func(b *game.Board) game.Observation
	id       string
}

// WithMaxPlies stops a game after plies moves without a result.
func WithMaxPlies(plies int) Option {
	return func(e *Engine) {
		if plies > 0 {
			e.maxPlies = plies
		}
	}
}

// WithObserver sets how each ply's observation is built.
func WithObserver(observe func(b *game.Board) game.Observation) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

func WithGameID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}

// LocalEngine plays a game on a fresh board. A single agent plays both
// sides (self-play); two agents play PlayerA and PlayerB respectively.
func LocalEngine(size, radius int, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 1 && len(agents) != 2 {
		panic("need one self-play agent or one agent per player")
	}
	e := &Engine{
		size:     size,
		radius:   radius,
		agents:   agents,
		maxPlies: size * size,
		observe:  game.Observe,
	}
	for _, option := range options {
		option(e)
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}
	return e
}

// Run plays until the game ends or the ply bound is hit, then labels
// every record with the outcome from its mover's perspective.
func (e *Engine) Run(ctx context.Context) (Game, error) {
	board := game.NewBoard(e.size, e.radius)
	g := Game{ID: e.id, Board: board}
	start := time.Now()

	log.Info().Str("game", e.id).Msgf("game started on %dx%d board", e.size, e.size)

	over, winner := false, game.Empty
	for step := 1; step <= e.maxPlies && !over; step++ {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		mover := board.ToMove()
		obs := e.observe(board)
		action, policy, metric, err := e.agentFor(mover).FindMove(board)
		if err != nil {
			return g, fmt.Errorf("failed to find move at ply %d: %w", step, err)
		}
		if err := board.ApplyMove(action); err != nil {
			return g, fmt.Errorf("agent played an illegal move at ply %d: %w", step, err)
		}

		g.Records = append(g.Records, Record{
			Observation: obs,
			Policy:      policy,
			Mover:       mover,
			Action:      action,
		})
		g.Moves = append(g.Moves, metrics.MoveMetric{
			Step:         step,
			Player:       int(mover),
			Action:       action,
			SearchMetric: metric,
		})

		over, winner = board.IsTerminal()
	}

	if !over {
		log.Info().Str("game", e.id).Msgf("stopped after %d plies without a result", e.maxPlies)
	}
	g.Winner = winner
	labelOutcomes(g.Records, winner)

	end := time.Now()
	g.Metric = metrics.GameMetric{
		ID:         e.id,
		Winner:     winner.String(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(g.Records),
	}
	log.Info().Str("game", e.id).Msgf("game over after %d plies, winner: %s", len(g.Records), winner)
	return g, nil
}

func (e *Engine) agentFor(mover game.Player) agent.Agent {
	if len(e.agents) == 1 {
		return e.agents[0]
	}
	return e.agents[int(mover)-1]
}

// labelOutcomes assigns the final result to the last ply and alternates
// its sign walking back to the first.
func labelOutcomes(records []Record, winner game.Player) {
	result := 0.0
	if winner != game.Empty {
		result = 1
	}
	for i := len(records) - 1; i >= 0; i-- {
		records[i].Outcome = result
		result = -result
	}
}
