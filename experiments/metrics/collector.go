package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Simulations       int
	Duration          time.Duration
	Source            string
	EvaluatorFailures int
	Fallbacks         int
	TerminalLeaves    int
	Rollouts          int
	TreeSize          int
}

type MoveMetric struct {
	Step   int
	Player int // game.Player of the mover
	Action int
	SearchMetric
}

type GameMetric struct {
	ID         string
	Agent1     int // AgentConfig.ID playing first
	Agent2     int // AgentConfig.ID playing second
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(source string)
	AddSimulation()
	AddEvaluatorFailure()
	AddFallback()
	AddTerminalLeaf()
	AddRollout()
	SetTreeSize(size int)
	Complete() SearchMetric
}

type collector struct {
	source            string
	startTime         time.Time
	simulations       atomic.Int32
	evaluatorFailures atomic.Int32
	fallbacks         atomic.Int32
	terminalLeaves    atomic.Int32
	rollouts          atomic.Int32
	treeSize          atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(source string) {
	m.source = source
	m.startTime = time.Now()
	m.simulations.Store(0)
	m.evaluatorFailures.Store(0)
	m.fallbacks.Store(0)
	m.terminalLeaves.Store(0)
	m.rollouts.Store(0)
	m.treeSize.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddEvaluatorFailure() {
	m.evaluatorFailures.Add(1)
}

func (m *collector) AddFallback() {
	m.fallbacks.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) SetTreeSize(size int) {
	m.treeSize.Store(int32(size))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations:       int(m.simulations.Load()),
		Duration:          time.Since(m.startTime),
		Source:            m.source,
		EvaluatorFailures: int(m.evaluatorFailures.Load()),
		Fallbacks:         int(m.fallbacks.Load()),
		TerminalLeaves:    int(m.terminalLeaves.Load()),
		Rollouts:          int(m.rollouts.Load()),
		TreeSize:          int(m.treeSize.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(source string)    {}
func (m *dummyCollector) AddSimulation()         {}
func (m *dummyCollector) AddEvaluatorFailure()   {}
func (m *dummyCollector) AddFallback()           {}
func (m *dummyCollector) AddTerminalLeaf()       {}
func (m *dummyCollector) AddRollout()            {}
func (m *dummyCollector) SetTreeSize(size int)   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
