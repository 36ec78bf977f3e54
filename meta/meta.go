// meta/meta.go
package meta

// GRID_SIZE defines the side length of the intersection grid.
const GRID_SIZE = 5

// PIECES_PER_SIDE defines how many pieces each side starts with.
const PIECES_PER_SIDE = 10

// MAX_TURNS caps AI-vs-AI matches that would otherwise shuffle forever.
const MAX_TURNS = 300

// Evaluation weights
const (
	MATERIAL_WEIGHT = 1000
	CAPTURE_WEIGHT  = 50
	CENTER_WEIGHT   = 10
	MOBILITY_WEIGHT = 5
)

// Search terminal scores. Elimination must outrank immobilization.
const (
	ELIMINATION_SCORE = 10000
	NO_MOVES_SCORE    = 5000
)

// Tier defaults
const (
	EASY_CAPTURE_BIAS = 0.3
	MEDIUM_DEPTH      = 2
	HARD_DEPTH        = 4
	EXPERT_MAX_DEPTH  = 4
)
