package searcher

import "baghbandi/game"

type bound int8

const (
	exact bound = iota
	lower
	upper
)

type memoKey struct {
	board      game.Board
	toMove     game.Side
	depth      int
	maximizing bool
}

type memoEntry struct {
	value int
	flag  bound
}

// memo remembers subtree values for one search. Bounds are kept alongside
// values because pruned subtrees only know one side of their true value.
type memo map[memoKey]memoEntry

// probe narrows the window with a stored entry. It reports true when the
// stored value alone settles the node.
func (m memo) probe(key memoKey, alpha, beta *int) (int, bool) {
	e, ok := m[key]
	if !ok {
		return 0, false
	}
	switch e.flag {
	case exact:
		return e.value, true
	case lower:
		*alpha = max(*alpha, e.value)
	case upper:
		*beta = min(*beta, e.value)
	}
	if *alpha >= *beta {
		return e.value, true
	}
	return 0, false
}

func (m memo) store(key memoKey, value, alpha, beta int) {
	flag := exact
	switch {
	case value <= alpha:
		flag = upper
	case value >= beta:
		flag = lower
	}
	m[key] = memoEntry{value: value, flag: flag}
}
