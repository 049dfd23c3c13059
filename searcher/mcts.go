package searcher

import (
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS is a PUCT search engine. It is not safe for concurrent use; run
// one engine per game.
type MCTS struct {
	simulations   int
	cPuct         float64
	evaluator     Evaluator
	source        EvaluationSource
	rolloutWeight float64
	cutoff        int
	evaluate      game.Evaluate
	rng           *rand.Rand
	tree          *tree
	metrics       metrics.Collector
	lastMetric    metrics.SearchMetric
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithCPuct(cPuct float64) Option {
	return func(m *MCTS) {
		if cPuct >= 0 {
			m.cPuct = cPuct
		}
	}
}

func WithEvaluator(evaluator Evaluator) Option {
	return func(m *MCTS) {
		if evaluator != nil {
			m.evaluator = evaluator
		}
	}
}

func WithEvaluationSource(source EvaluationSource) Option {
	return func(m *MCTS) {
		m.source = source
	}
}

// WithRolloutWeight sets the share of the rollout value in the leaf value
// when rollouts are enabled.
func WithRolloutWeight(weight float64) Option {
	return func(m *MCTS) {
		if weight >= 0 && weight <= 1 {
			m.rolloutWeight = weight
		}
	}
}

// WithCutoff bounds rollouts to depth plies, scoring the cutoff position
// with evaluate when one is given.
func WithCutoff(depth int, evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		simulations:   DefaultSimulations,
		cPuct:         DefaultCPuct,
		evaluator:     NewHeuristicEvaluator(),
		source:        LearnedOnly,
		rolloutWeight: DefaultRolloutWeight,
		cutoff:        MaxCutoff,
		evaluate:      game.EvaluateHeuristic,
		rng:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Simulations returns the per-move simulation budget.
func (m *MCTS) Simulations() int {
	return m.simulations
}

// CPuct returns the exploration constant.
func (m *MCTS) CPuct() float64 {
	return m.cPuct
}

// Metric returns the metrics of the last GetAction call.
func (m *MCTS) Metric() metrics.SearchMetric {
	return m.lastMetric
}

// GetAction searches from a fresh root over a copy of b and returns the
// chosen action with the move distribution over every cell. Temperature 0
// picks the most visited action; otherwise the action is sampled from
// visits^(1/temperature).
func (m *MCTS) GetAction(b *game.Board, temperature float64) (int, []float64, error) {
	available := b.CandidateMoves()
	if over, _ := game.Terminal(b); over || len(available) == 0 {
		return -1, nil, ErrNoMoves
	}

	m.tree = newTree(m.cPuct)
	m.metrics.Start(m.source.String())

	m.expandRoot(b)
	for i := 0; i < m.simulations; i++ {
		m.simulate(b)
		m.metrics.AddSimulation()
	}
	m.metrics.SetTreeSize(len(m.tree.nodes))

	action, policy := m.decide(b, available, temperature)
	m.lastMetric = m.metrics.Complete()

	log.Debug().
		Int("action", action).
		Int("simulations", m.simulations).
		Int("nodes", len(m.tree.nodes)).
		Float64("temperature", temperature).
		Msg("search complete")
	return action, policy, nil
}

// RootVisits reports the visit count of each root child of the last
// search, keyed by action.
func (m *MCTS) RootVisits() map[int]int {
	result := map[int]int{}
	if m.tree == nil {
		return result
	}
	actions, visits := m.tree.rootVisits()
	for i, action := range actions {
		result[action] = visits[i]
	}
	return result
}

func (m *MCTS) decide(b *game.Board, available []int, temperature float64) (int, []float64) {
	policy := make([]float64, b.Cells())
	actions, visits := m.tree.rootVisits()

	if len(actions) == 0 {
		log.Warn().Msg("root has no children after search, falling back to uniform policy")
		m.metrics.AddFallback()
		utils.Normalize(policy, available)
		return available[m.rng.Intn(len(available))], policy
	}

	if temperature <= 0 {
		best := actions[utils.ArgMax(visits)]
		policy[best] = 1
		return best, policy
	}

	probs, ok := visitDistribution(visits, temperature)
	if !ok {
		log.Warn().Msg("root children have no visits, falling back to uniform policy")
		m.metrics.AddFallback()
		for i := range probs {
			probs[i] = 1 / float64(len(probs))
		}
	}
	for i, action := range actions {
		policy[action] = probs[i]
	}
	return actions[sample(m.rng, probs)], policy
}

// sample draws an index from probs.
func sample(rng *rand.Rand, probs []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	last := 0
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return last // Fallback in case of rounding errors
}

// expandRoot creates the root children. It reports false when the
// evaluator fails, leaving the root a leaf.
func (m *MCTS) expandRoot(b *game.Board) bool {
	priors, _, err := safeEvaluate(m.evaluator, b)
	if err != nil {
		m.recordFailure(err)
		return false
	}
	m.expand(0, b, priors)
	return true
}

func (m *MCTS) simulate(root *game.Board) {
	// A root left unexpanded by a failed evaluation is retried so the
	// simulation still lands its visit on a root child.
	if m.tree.isLeaf(0) && !m.expandRoot(root) {
		m.tree.backup(0, Draw)
		return
	}

	b := root.Clone()
	i := 0
	for !m.tree.isLeaf(i) {
		child := m.tree.selectChild(i)
		if err := b.ApplyMove(m.tree.nodes[child].action); err != nil {
			log.Warn().Err(err).Msg("selected action rejected by board")
			m.tree.backup(i, Draw)
			return
		}
		i = child
	}
	m.tree.backup(i, m.evaluateLeaf(i, b))
}

// evaluateLeaf returns the value of leaf i for the player who moved into
// it, expanding it when the position is not terminal.
func (m *MCTS) evaluateLeaf(i int, b *game.Board) float64 {
	if over, winner := game.Terminal(b); over {
		m.metrics.AddTerminalLeaf()
		if winner == game.Empty {
			return Draw
		}
		if _, mover, _ := b.LastMove(); winner == mover {
			return Win
		}
		return Loss
	}

	priors, value, err := safeEvaluate(m.evaluator, b)
	if err != nil {
		m.recordFailure(err)
		return Draw
	}
	m.expand(i, b, priors)

	if m.source == LearnedWithRollout {
		value = (1-m.rolloutWeight)*value + m.rolloutWeight*m.rollout(b)
	}
	// value is for the player to move at the leaf
	return -value
}

// expand creates one child per candidate action, in ascending action
// order, with priors restricted to the candidates and renormalized.
func (m *MCTS) expand(i int, b *game.Board, priors []float64) {
	candidates := b.CandidateMoves()
	restricted := make([]float64, len(candidates))
	eligible := make([]int, len(candidates))
	for k, action := range candidates {
		restricted[k] = priors[action]
		eligible[k] = k
	}
	if !utils.Normalize(restricted, eligible) {
		log.Warn().Int("candidates", len(candidates)).Msg("zero prior mass on candidates, using uniform priors")
		m.metrics.AddFallback()
	}
	for k, action := range candidates {
		m.tree.addChild(i, action, restricted[k])
	}
}

func (m *MCTS) recordFailure(err error) {
	log.Warn().Err(err).Msg("evaluation failed, backing up neutral value")
	m.metrics.AddEvaluatorFailure()
}
