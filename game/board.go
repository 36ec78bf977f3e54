package game

import (
	"baghbandi/meta"
	"fmt"
	"strings"
)

const Size = meta.GRID_SIZE

// Point is an intersection on the grid.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Center is the geometric middle of the grid.
var Center = Point{Row: Size / 2, Col: Size / 2}

// Board holds the occupancy of every intersection, row-major. It is a value:
// assigning a Board copies it.
type Board [Size * Size]Side

// NewBoard seeds the first two rows with SideA, the last two with SideB and
// leaves the middle row empty.
func NewBoard() Board {
	var b Board
	for i := range b {
		switch {
		case i < meta.PIECES_PER_SIDE:
			b[i] = SideA
		case i >= len(b)-meta.PIECES_PER_SIDE:
			b[i] = SideB
		}
	}
	return b
}

// At returns Empty for out-of-bounds points.
func (b *Board) At(p Point) Side {
	if !p.InBounds() {
		return Empty
	}
	return b[p.Row*Size+p.Col]
}

func (b *Board) Set(p Point, s Side) {
	if !p.InBounds() {
		panic(fmt.Sprintf("set out of bounds at %v", p))
	}
	b[p.Row*Size+p.Col] = s
}

func (b *Board) Count(s Side) int {
	count := 0
	for _, cell := range b {
		if cell == s {
			count++
		}
	}
	return count
}

// Check reports contents that no sequence of legal moves can produce.
func (b *Board) Check() error {
	for i, cell := range b {
		if cell != Empty && cell != SideA && cell != SideB {
			return fmt.Errorf("cell %d holds unknown side %d", i, cell)
		}
	}
	for _, s := range []Side{SideA, SideB} {
		if n := b.Count(s); n > meta.PIECES_PER_SIDE {
			return fmt.Errorf("side %s has %d pieces, at most %d allowed", s, n, meta.PIECES_PER_SIDE)
		}
	}
	return nil
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(Point{Row: r, Col: c}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the layout produced by Board.String. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, field := range strings.Fields(s) {
		for _, ch := range field {
			if i >= len(b) {
				return Board{}, fmt.Errorf("board has more than %d cells", len(b))
			}
			side, err := ParseSide(string(ch))
			if err != nil {
				return Board{}, err
			}
			b[i] = side
			i++
		}
	}
	if i != len(b) {
		return Board{}, fmt.Errorf("board has %d cells, want %d", i, len(b))
	}
	return b, nil
}
