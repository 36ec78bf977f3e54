package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	MemoHits  int64
	Depth     int // deepest completed iteration
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCutoff()
	AddMemoHit()
	CompleteDepth(depth int)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	memoHits  atomic.Int64
	depth     atomic.Int32
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		MemoHits:  m.memoHits.Load(),
		Depth:     int(m.depth.Load()),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) AddMemoHit()             {}
func (m *noMetricsCollector) CompleteDepth(depth int) {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
