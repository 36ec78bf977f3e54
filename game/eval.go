package game

import "baghbandi/meta"

// Weights tunes the static evaluation.
type Weights struct {
	Material int
	Capture  int
	Center   int
	Mobility int
}

func DefaultWeights() Weights {
	return Weights{
		Material: meta.MATERIAL_WEIGHT,
		Capture:  meta.CAPTURE_WEIGHT,
		Center:   meta.CENTER_WEIGHT,
		Mobility: meta.MOBILITY_WEIGHT,
	}
}

// CenterPoints are the middle intersection and its orthogonal neighbors.
var CenterPoints = []Point{{2, 2}, {1, 2}, {2, 1}, {2, 3}, {3, 2}}

// Evaluator scores boards under a rule set.
type Evaluator struct {
	Rules   Rules
	Weights Weights
}

func NewEvaluator(rules Rules, weights Weights) *Evaluator {
	return &Evaluator{Rules: rules, Weights: weights}
}

// Evaluate returns a score from side's perspective: material, pending
// capture threats, center occupancy and mobility.
func (e *Evaluator) Evaluate(b Board, side Side) int {
	score := e.Weights.Material * (b.Count(SideA) - b.Count(SideB))
	score += e.Weights.Capture * (e.threats(&b, SideA) - e.threats(&b, SideB))
	score += e.Weights.Center * e.centerBalance(&b)
	mobilityA := len(MovesForSide(e.Rules, &b, SideA))
	mobilityB := len(MovesForSide(e.Rules, &b, SideB))
	score += e.Weights.Mobility * (mobilityA - mobilityB)

	if side == SideB {
		return -score
	}
	return score
}

// threats counts directions in which side could capture on its next move.
func (e *Evaluator) threats(b *Board, side Side) int {
	count := 0
	for i, cell := range b {
		if cell != side {
			continue
		}
		count += len(JumpsFrom(e.Rules, b, Point{Row: i / Size, Col: i % Size}))
	}
	return count
}

func (e *Evaluator) centerBalance(b *Board) int {
	balance := 0
	for _, p := range CenterPoints {
		switch b.At(p) {
		case SideA:
			balance++
		case SideB:
			balance--
		}
	}
	return balance
}
