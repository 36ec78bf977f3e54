package metrics

import (
	"baghbandi/agent"
	"baghbandi/game"
	"baghbandi/searcher"
	"time"
)

type AgentConfig struct {
	ID          int
	Tier        agent.Tier
	Depth       int // 0 keeps the tier's default
	CaptureBias float64
}

type MoveMetric struct {
	Step     int
	Side     game.Side
	Tier     agent.Tier
	Move     game.Move
	Captured bool
	Searched bool
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingSide game.Side
	Winner       game.Side
	Reason       game.Reason
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector gathers the metrics of one game.
type Collector interface {
	Start(starting game.Side)
	AddMove(side game.Side, d agent.Decision, captured bool)
	Complete(result game.Result) (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Side
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Side) {
	m.starting = starting
	m.startTime = time.Now()
	m.moves = nil
}

func (m *collector) AddMove(side game.Side, d agent.Decision, captured bool) {
	m.moves = append(m.moves, MoveMetric{
		Step:          len(m.moves) + 1,
		Side:          side,
		Tier:          d.Tier,
		Move:          d.Move,
		Captured:      captured,
		Searched:      d.Searched,
		SearchMetrics: d.Search.Metrics,
	})
}

func (m *collector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingSide: m.starting,
		Winner:       result.Winner,
		Reason:       result.Reason,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		TotalMoves:   len(m.moves),
	}, m.moves
}

type dummyCollector struct {
	moves int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Side)                                { m.moves = 0 }
func (m *dummyCollector) AddMove(side game.Side, d agent.Decision, captured bool) { m.moves++ }
func (m *dummyCollector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: result.Winner, Reason: result.Reason, TotalMoves: m.moves}, nil
}
