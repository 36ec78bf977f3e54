package engine

import (
	"baghbandi/experiments/metrics"
	"baghbandi/game"
)

type Engine interface {
	// Run plays a game until it is decided or the turn limit is reached
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
