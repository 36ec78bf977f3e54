package game

import "fmt"

// Move relocates the piece at From to To. A capture jumps two intersections
// and removes the piece in between.
type Move struct {
	From Point
	To   Point
}

func (m Move) IsCapture() bool {
	return abs(m.To.Row-m.From.Row) == 2 || abs(m.To.Col-m.From.Col) == 2
}

// Captured returns the jumped intersection for captures.
func (m Move) Captured() (Point, bool) {
	if !m.IsCapture() {
		return Point{}, false
	}
	return Point{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}, true
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%vx%v", m.From, m.To)
	}
	return fmt.Sprintf("%v-%v", m.From, m.To)
}

// Jump is a capture seen from the capturing piece.
type Jump struct {
	Over Point
	Land Point
}

// Options lists where the piece on a point may go.
type Options struct {
	Steps []Point
	Jumps []Jump
}

func (o Options) Empty() bool {
	return len(o.Steps) == 0 && len(o.Jumps) == 0
}

// Allows reports whether to is a step or jump destination.
func (o Options) Allows(to Point) bool {
	for _, p := range o.Steps {
		if p == to {
			return true
		}
	}
	for _, j := range o.Jumps {
		if j.Land == to {
			return true
		}
	}
	return false
}

// MovesFrom scans each direction valid at p once for a step and once for a
// jump. Empty or out-of-bounds points have no options.
func MovesFrom(rules Rules, b *Board, p Point) Options {
	var opts Options
	side := b.At(p)
	if side == Empty {
		return opts
	}
	enemy := side.Opponent()
	for _, d := range rules.Directions(p) {
		mid := p.Add(d)
		if !mid.InBounds() {
			continue
		}
		if b.At(mid) == Empty {
			opts.Steps = append(opts.Steps, mid)
			continue
		}
		land := mid.Add(d)
		if b.At(mid) == enemy && land.InBounds() && b.At(land) == Empty {
			opts.Jumps = append(opts.Jumps, Jump{Over: mid, Land: land})
		}
	}
	return opts
}

// JumpsFrom is MovesFrom restricted to captures.
func JumpsFrom(rules Rules, b *Board, p Point) []Jump {
	return MovesFrom(rules, b, p).Jumps
}

// MovesForSide walks the board row-major and lists, per piece, steps before
// jumps. The order is stable for a given board.
func MovesForSide(rules Rules, b *Board, side Side) []Move {
	var moves []Move
	if side == Empty {
		return moves
	}
	for i, cell := range b {
		if cell != side {
			continue
		}
		from := Point{Row: i / Size, Col: i % Size}
		opts := MovesFrom(rules, b, from)
		for _, to := range opts.Steps {
			moves = append(moves, Move{From: from, To: to})
		}
		for _, j := range opts.Jumps {
			moves = append(moves, Move{From: from, To: j.Land})
		}
	}
	return moves
}

// CapturesForSide filters MovesForSide to captures.
func CapturesForSide(rules Rules, b *Board, side Side) []Move {
	var captures []Move
	for _, m := range MovesForSide(rules, b, side) {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

// HasMoves stops at the first legal move it finds.
func HasMoves(rules Rules, b *Board, side Side) bool {
	for i, cell := range b {
		if cell != side {
			continue
		}
		if !MovesFrom(rules, b, Point{Row: i / Size, Col: i % Size}).Empty() {
			return true
		}
	}
	return false
}

// Apply performs m on b without any legality check.
func Apply(b *Board, m Move) {
	piece := b.At(m.From)
	if over, ok := m.Captured(); ok {
		b.Set(over, Empty)
	}
	b.Set(m.To, piece)
	b.Set(m.From, Empty)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
