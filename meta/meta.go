// meta/meta.go
package meta

// BOARD_SIZE defines the side of the square board.
const BOARD_SIZE = 15

// RADIUS defines the candidate neighborhood radius.
const RADIUS = 2

// SIMULATIONS defines the number of simulations per move.
const SIMULATIONS = 400

// C_PUCT defines the exploration constant.
const C_PUCT = 5.0

// EXPLORATION_PLIES defines how many opening plies are sampled at temperature.
const EXPLORATION_PLIES = 30

// TEMPERATURE defines the sampling temperature of the opening plies.
const TEMPERATURE = 1.0

// GAMES defines the number of games per run.
const GAMES = 10

// PARALLEL defines how many games run at once.
const PARALLEL = 4

// ROLLOUT_WEIGHT defines the share of rollout value with rollouts enabled.
const ROLLOUT_WEIGHT = 0.5

// CUTOFF defines the maximum rollout depth.
const CUTOFF = 40
