package game

import "fmt"

// StandardRules follows the traditional drawn grid: diagonals only run
// through intersections whose row+col is even.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Directions(p Point) []Direction {
	if (p.Row+p.Col)%2 == 0 {
		return allEight
	}
	return orthogonals
}

// FullGridRules connects every intersection to all eight neighbors.
type FullGridRules struct{}

func NewFullGridRules() *FullGridRules {
	return &FullGridRules{}
}

func (fr *FullGridRules) Directions(p Point) []Direction {
	return allEight
}

// RulesByName maps a configuration name to a rule set.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "", "standard":
		return NewStandardRules(), nil
	case "full":
		return NewFullGridRules(), nil
	}
	return nil, fmt.Errorf("unknown rule set %q", name)
}
