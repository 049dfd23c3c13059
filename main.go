package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"gomoku/experiments"
	"gomoku/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml/json/toml config file")
	mode := flag.String("mode", "selfplay", "Run mode: selfplay, match or throughput")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var result *experiments.Result
	switch *mode {
	case "selfplay":
		result, err = experiments.RunSelfPlay(ctx, cfg)
	case "match":
		result, err = experiments.RunMatchUp(ctx, cfg)
	case "throughput":
		result, err = experiments.RunThroughput(ctx, cfg, nil)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s run failed", *mode)
	}

	if len(result.Samples) > 0 {
		log.Info().Int("samples", len(result.Samples)).Msg("augmented training samples ready")
	}

	dir, err := experiments.Save(cfg.OutputDir, result)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to save results")
	}
	log.Info().Str("dir", dir).Msg("results saved")
}
