package game

// Direction is a unit step on the grid.
type Direction struct {
	DRow int
	DCol int
}

var (
	North     = Direction{DRow: -1}
	South     = Direction{DRow: 1}
	West      = Direction{DCol: -1}
	East      = Direction{DCol: 1}
	NorthWest = Direction{DRow: -1, DCol: -1}
	NorthEast = Direction{DRow: -1, DCol: 1}
	SouthWest = Direction{DRow: 1, DCol: -1}
	SouthEast = Direction{DRow: 1, DCol: 1}
)

var (
	orthogonals = []Direction{North, South, West, East}
	allEight    = []Direction{North, South, West, East, NorthWest, NorthEast, SouthWest, SouthEast}
)

// Rules decides which directions a piece may travel from a point. Movement and
// capture generation never look at adjacency any other way, so swapping the
// Rules swaps the drawn lines of the board.
type Rules interface {
	Directions(p Point) []Direction
}

// Neighbors returns the in-bounds neighbors of p, in direction order.
func Neighbors(rules Rules, p Point) []Point {
	if !p.InBounds() {
		return nil
	}
	var points []Point
	for _, d := range rules.Directions(p) {
		if n := p.Add(d); n.InBounds() {
			points = append(points, n)
		}
	}
	return points
}
