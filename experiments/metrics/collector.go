package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations         int // Requested iterations
	Duration           time.Duration
	Episodes           int // Completed select/expand/simulate/backpropagate cycles
	Expansions         int // Nodes added to the tree
	TerminalSelections int // Cycles that ended on a terminal or fully explored node
	RolloutMoves       int // Random moves played during simulations
	TreeSize           int
}

type MoveMetric struct {
	Step     int
	Player   int
	Position int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records the statistics of one search. Searches are single
// threaded, so no synchronization is needed.
type Collector interface {
	Start(iterations int)
	AddEpisode()
	AddExpansion()
	AddTerminalSelection()
	AddRolloutMoves(n int)
	Complete(treeSize int) SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int) {
	m.metric = SearchMetric{Iterations: iterations}
	m.startTime = time.Now()
}

func (m *collector) AddEpisode() {
	m.metric.Episodes++
}

func (m *collector) AddExpansion() {
	m.metric.Expansions++
}

func (m *collector) AddTerminalSelection() {
	m.metric.TerminalSelections++
}

func (m *collector) AddRolloutMoves(n int) {
	m.metric.RolloutMoves += n
}

func (m *collector) Complete(treeSize int) SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	m.metric.TreeSize = treeSize
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int)               {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) AddExpansion()                      {}
func (m *dummyCollector) AddTerminalSelection()              {}
func (m *dummyCollector) AddRolloutMoves(n int)              {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{} }
