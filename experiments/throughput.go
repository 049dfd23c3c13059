package experiments

import (
	"context"
	"fmt"

	"gomoku/engine"
	"gomoku/meta"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultBudgets are the per-move simulation budgets of a throughput run.
var DefaultBudgets = []int{50, 100, 200, 400, 800}

// RunThroughput plays cfg.Games greedy games per budget with both sides
// searching at that budget, so move records show how search time scales
// with the number of simulations. Budgets run one after another.
func RunThroughput(ctx context.Context, cfg *meta.Config, budgets []int) (*Result, error) {
	if len(budgets) == 0 {
		budgets = DefaultBudgets
	}

	result := &Result{Name: "throughput"}
	log.Info().Msg("starting throughput experiment...")

	for id, budget := range budgets {
		config := cfg.Agent
		config.Simulations = budget
		result.Configs = append(result.Configs, agentConfig(id+1, config))
		log.Info().Msgf("starting budget of %d simulations per move...", budget)

		games := make([]engine.Game, cfg.Games)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Parallel)
		for i := 0; i < cfg.Games; i++ {
			i := i
			g.Go(func() error {
				played, err := runGame(gctx, cfg, config, cfg.Seed+uint64(id*cfg.Games+i))
				if err != nil {
					return fmt.Errorf("throughput game %d at budget %d: %w", i+1, budget, err)
				}
				played.Metric.Agent1, played.Metric.Agent2 = id+1, id+1
				games[i] = played
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		result.Games = append(result.Games, games...)

		log.Info().Msgf("completed budget %d at %.0f simulations per second",
			budget, SimulationsPerSecond(games))
	}

	log.Info().Msg("completed throughput experiment")
	return result, nil
}

// runGame plays one greedy game with the same config on both sides.
func runGame(ctx context.Context, cfg *meta.Config, config meta.AgentConfig, seed uint64) (engine.Game, error) {
	agents := make([]agent.Agent, 2)
	for slot := range agents {
		mcts, err := createMCTS(config, seed+uint64(slot)<<32)
		if err != nil {
			return engine.Game{}, err
		}
		agents[slot] = agent.NewEvaluationAgent(mcts)
	}
	e := engine.LocalEngine(cfg.BoardSize, cfg.Radius, agents, engineOptions(cfg)...)
	return e.Run(ctx)
}

// SimulationsPerSecond averages search throughput over every recorded
// move of the games.
func SimulationsPerSecond(games []engine.Game) float64 {
	simulations, seconds := 0, 0.0
	for _, g := range games {
		for _, mm := range g.Moves {
			simulations += mm.Simulations
			seconds += mm.Duration.Seconds()
		}
	}
	if seconds == 0 {
		return 0
	}
	return float64(simulations) / seconds
}
