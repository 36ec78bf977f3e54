package searcher

import (
	"testing"

	"baghbandi/game"

	"github.com/stretchr/testify/require"
)

func stateOf(t *testing.T, layout string, toMove game.Side) game.State {
	t.Helper()
	b, err := game.ParseBoard(layout)
	require.NoError(t, err)
	s := game.NewState(game.NewStandardRules())
	s.Board = b
	s.ToMove = toMove
	s.Rejudge()
	return s
}

const midgame = `
	A A . A A
	. A B A .
	B . . . A
	. B . B .
	B B . B B`

// reference is a plain minimax with no pruning, ordering or memo.
func reference(rules game.Rules, eval game.Evaluate, board game.Board, toMove, side game.Side, depth int, maximizing bool) int {
	if board.Count(side) == 0 {
		return -(EliminationScore + depth)
	}
	if board.Count(side.Opponent()) == 0 {
		return EliminationScore + depth
	}
	if depth == 0 {
		return eval(board, side)
	}
	moves := game.MovesForSide(rules, &board, toMove)
	if len(moves) == 0 {
		if maximizing {
			return -NoMovesScore
		}
		return NoMovesScore
	}
	best := posInf
	if maximizing {
		best = negInf
	}
	for _, m := range moves {
		child := board
		game.Apply(&child, m)
		v := reference(rules, eval, child, toMove.Opponent(), side, depth-1, !maximizing)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func referenceRoot(state game.State, depth int) int {
	eval := game.NewEvaluator(state.Rules, game.DefaultWeights()).Evaluate
	best := negInf
	for _, m := range state.LegalMoves() {
		child := state.Board
		game.Apply(&child, m)
		best = max(best, reference(state.Rules, eval, child, state.ToMove.Opponent(), state.ToMove, depth-1, false))
	}
	return best
}

func TestAlphaBetaEquivalence(t *testing.T) {
	positions := map[string]game.State{
		"opening":        game.NewState(game.NewStandardRules()),
		"midgame side A": stateOf(t, midgame, game.SideA),
		"midgame side B": stateOf(t, midgame, game.SideB),
	}
	variants := map[string][]Option{
		"pruning":              {},
		"pruning and ordering": {WithOrdering()},
		"everything":           {WithOrdering(), WithTranspositions()},
		"iterative":            {WithOrdering(), WithTranspositions(), WithIterativeDeepening()},
	}

	for name, state := range positions {
		for depth := 1; depth <= 3; depth++ {
			full, ok := NewSearcher(WithDepth(depth), WithoutPruning()).Search(state)
			require.True(t, ok)
			require.Equal(t, referenceRoot(state, depth), full.Score,
				"%s depth %d: unpruned search should match the reference", name, depth)

			for variant, options := range variants {
				options = append(options, WithDepth(depth))
				got, ok := NewSearcher(options...).Search(state)

				require.True(t, ok)
				require.Equal(t, full.Score, got.Score, "%s depth %d with %s", name, depth, variant)
			}
		}
	}
}

func TestSearchDeterminism(t *testing.T) {
	state := stateOf(t, midgame, game.SideB)
	s := NewSearcher(WithDepth(3), WithOrdering(), WithTranspositions())

	first, ok := s.Search(state)
	require.True(t, ok)
	second, _ := s.Search(state)

	require.Equal(t, first.Move, second.Move)
	require.Equal(t, first.Score, second.Score)
}

func TestSearchDoesNotMutateState(t *testing.T) {
	state := stateOf(t, midgame, game.SideA)
	before := state.Copy()

	_, ok := NewSearcher(WithDepth(3), WithTranspositions()).Search(state)

	require.True(t, ok)
	require.Equal(t, before, state)
}

func TestSearchTakesEliminatingCapture(t *testing.T) {
	state := stateOf(t, `
		. . . . .
		. . . . .
		. A B . .
		. . . . .
		A . . . .`, game.SideA)

	for _, depth := range []int{1, 2, 3} {
		got, ok := NewSearcher(WithDepth(depth)).Search(state)

		require.True(t, ok)
		require.Equal(t, game.Move{From: game.Point{Row: 2, Col: 1}, To: game.Point{Row: 2, Col: 3}}, got.Move)
		require.Equal(t, EliminationScore+depth-1, got.Score, "Faster wins score higher")
	}
}

func TestSearchRespectsPendingChain(t *testing.T) {
	state := stateOf(t, `
		. . A . .
		. . B . .
		. . . . .
		A . . . .
		B . . . B`, game.SideA)
	chain := game.Point{Row: 0, Col: 2}
	state.ChainFrom = &chain

	got, ok := NewSearcher(WithDepth(2), WithOrdering()).Search(state)

	require.True(t, ok)
	require.Equal(t, game.Move{From: chain, To: game.Point{Row: 2, Col: 2}}, got.Move)
}

func TestSearchWithoutMoves(t *testing.T) {
	state := stateOf(t, `
		A B B . .
		B B . . .
		B . B . .
		. . . . .
		. . . . .`, game.SideA)

	_, ok := NewSearcher().Search(state)

	require.False(t, ok)
}

func TestSearchMetrics(t *testing.T) {
	t.Run("collects when enabled", func(t *testing.T) {
		state := game.NewState(game.NewStandardRules())

		got, ok := NewSearcher(WithDepth(4), WithOrdering(), WithTranspositions(), WithMetrics()).Search(state)

		require.True(t, ok)
		require.Equal(t, 4, got.Metrics.Depth)
		require.Positive(t, got.Metrics.Nodes)
		require.Positive(t, got.Metrics.Cutoffs)
		require.Positive(t, got.Metrics.MemoHits, "Move transpositions repeat positions at depth 4")
	})

	t.Run("empty when disabled", func(t *testing.T) {
		got, _ := NewSearcher().Search(game.NewState(nil))
		require.Equal(t, SearchMetrics{}, got.Metrics)
	})

	t.Run("pruning visits fewer nodes", func(t *testing.T) {
		state := stateOf(t, midgame, game.SideA)

		pruned, _ := NewSearcher(WithDepth(3), WithMetrics()).Search(state)
		full, _ := NewSearcher(WithDepth(3), WithMetrics(), WithoutPruning()).Search(state)

		require.Less(t, pruned.Metrics.Nodes, full.Metrics.Nodes)
		require.Zero(t, full.Metrics.Cutoffs)
	})
}

func TestSearcherOptions(t *testing.T) {
	require.Equal(t, 2, NewSearcher().Depth(), "Default depth")
	require.Equal(t, 2, NewSearcher(WithDepth(0)).Depth(), "Non-positive depths are ignored")
	require.Equal(t, 5, NewSearcher(WithDepth(5)).Depth())

	calls := 0
	flat := func(b game.Board, side game.Side) int {
		calls++
		return 0
	}
	_, ok := NewSearcher(WithDepth(1), WithEvaluationFn(flat)).Search(game.NewState(nil))
	require.True(t, ok)
	require.Equal(t, 9, calls, "One evaluation per opening move at depth 1")
}
