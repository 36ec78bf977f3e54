package searcher

import (
	"baghbandi/game"

	"golang.org/x/exp/slices"
)

// order returns moves with captures first, then by how close the destination
// is to the center, then by how far the piece advances toward the enemy's
// home rows. Ties keep generation order. A principal move from a previous
// iteration goes in front of everything.
func (r *run) order(moves []game.Move, side game.Side, principal *game.Move) []game.Move {
	if !r.ordering {
		return moves
	}
	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(a, b game.Move) int {
		if a.IsCapture() != b.IsCapture() {
			if a.IsCapture() {
				return -1
			}
			return 1
		}
		if d := centerDistance(a.To) - centerDistance(b.To); d != 0 {
			return d
		}
		return advance(b, side) - advance(a, side)
	})
	if principal != nil {
		if i := slices.Index(ordered, *principal); i > 0 {
			pv := ordered[i]
			copy(ordered[1:i+1], ordered[:i])
			ordered[0] = pv
		}
	}
	return ordered
}

func centerDistance(p game.Point) int {
	return abs(p.Row-game.Center.Row) + abs(p.Col-game.Center.Col)
}

// advance is positive when the move heads toward the opponent's starting
// rows: SideA starts at the top, SideB at the bottom.
func advance(m game.Move, side game.Side) int {
	rows := m.To.Row - m.From.Row
	if side == game.SideB {
		return -rows
	}
	return rows
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
