package meta

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AgentConfig struct {
	Simulations   int     `mapstructure:"simulations"`
	CPuct         float64 `mapstructure:"c_puct"`
	Source        string  `mapstructure:"source"`
	RolloutWeight float64 `mapstructure:"rollout_weight"`
	Cutoff        int     `mapstructure:"cutoff"`
}

type Config struct {
	BoardSize        int         `mapstructure:"board_size"`
	Radius           int         `mapstructure:"radius"`
	MaxPlies         int         `mapstructure:"max_plies"`
	ExplorationPlies int         `mapstructure:"exploration_plies"`
	Temperature      float64     `mapstructure:"temperature"`
	HeuristicPlane   bool        `mapstructure:"heuristic_plane"`
	Games            int         `mapstructure:"games"`
	Parallel         int         `mapstructure:"parallel"`
	Seed             uint64      `mapstructure:"seed"`
	OutputDir        string      `mapstructure:"output_dir"`
	LogLevel         string      `mapstructure:"log_level"`
	Agent            AgentConfig `mapstructure:"agent"`
	Opponent         AgentConfig `mapstructure:"opponent"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board_size", BOARD_SIZE)
	v.SetDefault("radius", RADIUS)
	v.SetDefault("max_plies", 0)
	v.SetDefault("exploration_plies", EXPLORATION_PLIES)
	v.SetDefault("temperature", TEMPERATURE)
	v.SetDefault("heuristic_plane", false)
	v.SetDefault("games", GAMES)
	v.SetDefault("parallel", PARALLEL)
	v.SetDefault("seed", 1)
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("log_level", "info")
	for _, prefix := range []string{"agent", "opponent"} {
		v.SetDefault(prefix+".simulations", SIMULATIONS)
		v.SetDefault(prefix+".c_puct", C_PUCT)
		v.SetDefault(prefix+".source", "learned")
		v.SetDefault(prefix+".rollout_weight", ROLLOUT_WEIGHT)
		v.SetDefault(prefix+".cutoff", CUTOFF)
	}
}

// Load reads the optional config file at path and GOMOKU_* environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GOMOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.MaxPlies <= 0 {
		cfg.MaxPlies = cfg.BoardSize * cfg.BoardSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.BoardSize < 5:
		return fmt.Errorf("board_size must be at least 5, got %d", c.BoardSize)
	case c.Radius < 1:
		return fmt.Errorf("radius must be positive, got %d", c.Radius)
	case c.Games < 1:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	case c.Parallel < 1:
		return fmt.Errorf("parallel must be positive, got %d", c.Parallel)
	}
	for name, agent := range map[string]AgentConfig{"agent": c.Agent, "opponent": c.Opponent} {
		if agent.Simulations < 1 {
			return fmt.Errorf("%s.simulations must be positive, got %d", name, agent.Simulations)
		}
		if agent.CPuct < 0 {
			return fmt.Errorf("%s.c_puct must not be negative, got %v", name, agent.CPuct)
		}
		if agent.RolloutWeight < 0 || agent.RolloutWeight > 1 {
			return fmt.Errorf("%s.rollout_weight must be within [0, 1], got %v", name, agent.RolloutWeight)
		}
	}
	return nil
}
