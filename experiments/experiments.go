package experiments

import (
	"context"
	"fmt"

	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"
	"gomoku/searcher"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Result holds the games of one run and the agents that played them.
type Result struct {
	Name    string
	Configs []metrics.AgentConfig
	Games   []engine.Game
	Samples []engine.Record // augmented training samples of every game
}

// RunSelfPlay plays cfg.Games self-play games, cfg.Parallel at a time.
// Each game owns its board, search tree and random source.
func RunSelfPlay(ctx context.Context, cfg *meta.Config) (*Result, error) {
	log.Info().Msgf("starting self-play: %d games, %d in parallel", cfg.Games, cfg.Parallel)

	games := make([]engine.Game, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			mcts, err := createMCTS(cfg.Agent, cfg.Seed+uint64(i))
			if err != nil {
				return err
			}
			player := agent.NewTrainingAgent(mcts, cfg.ExplorationPlies, cfg.Temperature)
			e := engine.LocalEngine(cfg.BoardSize, cfg.Radius, []agent.Agent{player}, engineOptions(cfg)...)

			result, err := e.Run(ctx)
			if err != nil {
				return fmt.Errorf("self-play game %d: %w", i+1, err)
			}
			result.Metric.Agent1, result.Metric.Agent2 = 1, 1
			games[i] = result
			log.Info().Msgf("completed self-play game %d of %d with winner: %s", i+1, cfg.Games, result.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	samples := []engine.Record{}
	for _, played := range games {
		samples = append(samples, engine.AugmentGame(played)...)
	}
	log.Info().Msgf("completed self-play with %d augmented samples", len(samples))

	return &Result{
		Name:    "selfplay",
		Configs: []metrics.AgentConfig{agentConfig(1, cfg.Agent)},
		Games:   games,
		Samples: samples,
	}, nil
}

// RunMatchUp pits cfg.Agent (ID 1) against cfg.Opponent (ID 2) with
// greedy play, alternating the first player every game.
func RunMatchUp(ctx context.Context, cfg *meta.Config) (*Result, error) {
	configs := []meta.AgentConfig{cfg.Agent, cfg.Opponent}
	log.Info().Msgf("starting matchup between agent1=%+v and agent2=%+v...", cfg.Agent, cfg.Opponent)

	games := make([]engine.Game, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			first, second := i%2, 1-i%2
			agents := make([]agent.Agent, 2)
			for slot, id := range []int{first, second} {
				mcts, err := createMCTS(configs[id], cfg.Seed+uint64(2*i+slot))
				if err != nil {
					return err
				}
				agents[slot] = agent.NewEvaluationAgent(mcts)
			}
			e := engine.LocalEngine(cfg.BoardSize, cfg.Radius, agents, engineOptions(cfg)...)

			result, err := e.Run(ctx)
			if err != nil {
				return fmt.Errorf("matchup game %d: %w", i+1, err)
			}
			result.Metric.Agent1, result.Metric.Agent2 = first+1, second+1
			games[i] = result
			log.Info().Msgf("completed matchup game %d of %d with winner: %s", i+1, cfg.Games, result.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Name:    "matchup",
		Configs: []metrics.AgentConfig{agentConfig(1, cfg.Agent), agentConfig(2, cfg.Opponent)},
		Games:   games,
	}, nil
}

// Save stores agent configs, game records and move records under root.
func Save(root string, result *Result) (string, error) {
	writer, err := metrics.NewWriter(root, result.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(result.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := make([]metrics.GameRecord, 0, len(result.Games))
	moveRecords := []metrics.MoveRecord{}
	for _, g := range result.Games {
		gameRecords = append(gameRecords, metrics.GameRecord{GameMetric: g.Metric})
		for _, mm := range g.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: g.ID, MoveMetric: mm})
		}
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

func engineOptions(cfg *meta.Config) []engine.Option {
	options := []engine.Option{engine.WithMaxPlies(cfg.MaxPlies)}
	if cfg.HeuristicPlane {
		options = append(options, engine.WithObserver(game.ObserveWithHeuristics))
	}
	return options
}

func createMCTS(config meta.AgentConfig, seed uint64) (*searcher.MCTS, error) {
	source, err := searcher.ParseEvaluationSource(config.Source)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithEvaluationSource(source),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
		searcher.WithMetrics(metrics.NewCollector()),
	}
	if config.Simulations > 0 {
		options = append(options, searcher.WithSimulations(config.Simulations))
	}
	options = append(options, searcher.WithCPuct(config.CPuct))
	if source == searcher.LearnedWithRollout {
		options = append(options,
			searcher.WithRolloutWeight(config.RolloutWeight),
			searcher.WithCutoff(config.Cutoff, nil))
	}
	return searcher.NewMCTS(options...), nil
}

func agentConfig(id int, config meta.AgentConfig) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:            id,
		Simulations:   config.Simulations,
		CPuct:         config.CPuct,
		Source:        config.Source,
		RolloutWeight: config.RolloutWeight,
		Cutoff:        config.Cutoff,
	}
}
