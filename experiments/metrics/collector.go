package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Difficulty int
	Depth      int // Adjusted depth, 0 for tiers without tree search
	Candidates int // Legal actions at the root
	Nodes      int // Positions visited by minimax
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Action string // Move-log notation
	SearchMetric
}

type GameMetric struct {
	Name       string
	Winner     string // Empty for a draw
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines, difficulty int)
	SetDepth(depth, candidates int)
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	difficulty int
	depth      int
	candidates int
	startTime  time.Time
	nodes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, difficulty int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.difficulty = difficulty
	m.depth = 0
	m.candidates = 0
	m.nodes.Store(0)
}

func (m *collector) SetDepth(depth, candidates int) {
	m.depth = depth
	m.candidates = candidates
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Difficulty: m.difficulty,
		Depth:      m.depth,
		Candidates: m.candidates,
		Nodes:      int(m.nodes.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, difficulty int) {}
func (m *dummyCollector) SetDepth(depth, candidates int)   {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
