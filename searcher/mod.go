package searcher

import "baghbandi/meta"

// Terminal scores. Elimination outranks immobilization, and both stay far
// above anything the static evaluation can produce.
const (
	EliminationScore = meta.ELIMINATION_SCORE
	NoMovesScore     = meta.NO_MOVES_SCORE
)

const (
	negInf = -1 << 30
	posInf = 1 << 30
)
