package game

import "fmt"

// Side identifies who owns an intersection. Empty doubles as "no side".
type Side int8

const (
	Empty Side = iota
	SideA
	SideB
)

func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "."
	}
}

// ParseSide is the inverse of Side.String.
func ParseSide(s string) (Side, error) {
	switch s {
	case "A":
		return SideA, nil
	case "B":
		return SideB, nil
	case ".", "":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown side %q", s)
}

// Reason records how a game was decided.
type Reason int8

const (
	Undecided Reason = iota
	Elimination
	Immobilization
)

func (r Reason) String() string {
	switch r {
	case Elimination:
		return "elimination"
	case Immobilization:
		return "immobilization"
	default:
		return "undecided"
	}
}

// Result is InProgress while Winner is Empty.
type Result struct {
	Winner Side
	Reason Reason
}

func (r Result) Over() bool {
	return r.Winner != Empty
}

var InProgress = Result{}

// Evaluate scores a board from the perspective of side.
type Evaluate func(b Board, side Side) int
