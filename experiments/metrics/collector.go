package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	NodeBudget int
	TimeBudget time.Duration
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Passes     int
	Exhausted  bool // Search stopped early on its node or time budget
}

type MoveMetric struct {
	Step   int
	Player int // Seat
	Pass   bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // Seat, -1 on a tie
	Scores         [4]float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, nodeBudget int, timeBudget time.Duration)
	AddNode()
	AddLeaf()
	AddPass()
	SetExhausted()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	nodeBudget int
	timeBudget time.Duration
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	passes     atomic.Int64
	exhausted  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth, nodeBudget int, timeBudget time.Duration) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodeBudget = nodeBudget
	m.timeBudget = timeBudget
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.passes.Store(0)
	m.exhausted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) SetExhausted() {
	m.exhausted.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		NodeBudget: m.nodeBudget,
		TimeBudget: m.timeBudget,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Passes:     int(m.passes.Load()),
		Exhausted:  m.exhausted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, nodeBudget int, timeBudget time.Duration) {}
func (m *dummyCollector) AddNode()                                              {}
func (m *dummyCollector) AddLeaf()                                              {}
func (m *dummyCollector) AddPass()                                              {}
func (m *dummyCollector) SetExhausted()                                         {}
func (m *dummyCollector) Complete() SearchMetric                                { return SearchMetric{} }
