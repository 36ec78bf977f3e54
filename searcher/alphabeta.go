package searcher

import (
	"baghbandi/game"
	"baghbandi/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher runs depth-bounded minimax with alpha-beta pruning. A Searcher only
// holds configuration, so one value may serve concurrent searches.
type Searcher struct {
	depth     int
	iterative bool
	ordering  bool
	memoize   bool
	pruning   bool
	weights   game.Weights
	evaluate  game.Evaluate
	metrics   bool
}

// Result is the outcome of a search from the root side's perspective.
type Result struct {
	Move    game.Move
	Score   int
	Depth   int
	Metrics SearchMetrics
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithIterativeDeepening searches depth 1 up to the configured depth and keeps
// the deepest completed iteration.
func WithIterativeDeepening() Option {
	return func(s *Searcher) {
		s.iterative = true
	}
}

// WithOrdering explores captures first, then moves toward the center.
func WithOrdering() Option {
	return func(s *Searcher) {
		s.ordering = true
	}
}

func WithTranspositions() Option {
	return func(s *Searcher) {
		s.memoize = true
	}
}

// WithoutPruning disables alpha-beta cutoffs. Only useful as a reference.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithWeights(weights game.Weights) Option {
	return func(s *Searcher) {
		s.weights = weights
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = true
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:   meta.MEDIUM_DEPTH,
		pruning: true,
		weights: game.DefaultWeights(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search picks a move for the side to move in state. It reports false when
// that side has no legal move. The state is never modified.
func (s *Searcher) Search(state game.State) (Result, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{}, false
	}

	r := s.newRun(state)
	r.metrics.Start()

	first := s.depth
	if s.iterative {
		first = 1
	}

	var best Result
	var principal *game.Move
	for depth := first; depth <= s.depth; depth++ {
		move, score := r.root(state.Board, moves, depth, principal)
		best = Result{Move: move, Score: score, Depth: depth}
		pv := move
		principal = &pv
		r.metrics.CompleteDepth(depth)

		log.Debug().
			Str("side", state.ToMove.String()).
			Int("depth", depth).
			Str("move", move.String()).
			Int("score", score).
			Msg("search iteration complete")
	}

	best.Metrics = r.metrics.Complete()
	return best, true
}

// run holds the per-search scratch state.
type run struct {
	*Searcher
	rules    game.Rules
	side     game.Side
	evaluate game.Evaluate
	memo     memo
	metrics  MetricsCollector
}

func (s *Searcher) newRun(state game.State) *run {
	r := &run{
		Searcher: s,
		rules:    state.Rules,
		side:     state.ToMove,
		evaluate: s.evaluate,
		metrics:  NewNoMetricsCollector(),
	}
	if r.evaluate == nil {
		r.evaluate = game.NewEvaluator(state.Rules, s.weights).Evaluate
	}
	if s.memoize && s.pruning {
		r.memo = memo{}
	}
	if s.metrics {
		r.metrics = NewMetricsCollector()
	}
	return r
}

// root scores every root move and returns the first one with the highest
// score. Later siblings are searched against the best score so far.
func (r *run) root(board game.Board, moves []game.Move, depth int, principal *game.Move) (game.Move, int) {
	ordered := r.order(moves, r.side, principal)

	bestMove := ordered[0]
	bestScore := negInf
	alpha := negInf
	for _, move := range ordered {
		child := board
		game.Apply(&child, move)
		score := r.minimax(child, r.side.Opponent(), depth-1, alpha, posInf, false)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if r.pruning {
			alpha = max(alpha, bestScore)
		}
	}
	return bestMove, bestScore
}

// minimax returns the value of board for the root side. Plies strictly
// alternate; the board is a private copy.
func (r *run) minimax(board game.Board, toMove game.Side, depth, alpha, beta int, maximizing bool) int {
	r.metrics.AddNode()

	if board.Count(r.side) == 0 {
		return -(EliminationScore + depth)
	}
	if board.Count(r.side.Opponent()) == 0 {
		return EliminationScore + depth
	}
	if depth == 0 {
		return r.evaluate(board, r.side)
	}

	key := memoKey{board: board, toMove: toMove, depth: depth, maximizing: maximizing}
	if r.memo != nil {
		if value, ok := r.memo.probe(key, &alpha, &beta); ok {
			r.metrics.AddMemoHit()
			return value
		}
	}

	moves := game.MovesForSide(r.rules, &board, toMove)
	if len(moves) == 0 {
		if maximizing {
			return -NoMovesScore
		}
		return NoMovesScore
	}
	moves = r.order(moves, toMove, nil)

	lo, hi := alpha, beta
	var best int
	if maximizing {
		best = negInf
		for _, move := range moves {
			child := board
			game.Apply(&child, move)
			score := r.minimax(child, toMove.Opponent(), depth-1, alpha, beta, false)
			best = max(best, score)
			alpha = max(alpha, score)
			if r.pruning && beta <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = posInf
		for _, move := range moves {
			child := board
			game.Apply(&child, move)
			score := r.minimax(child, toMove.Opponent(), depth-1, alpha, beta, true)
			best = min(best, score)
			beta = min(beta, score)
			if r.pruning && beta <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	}

	if r.memo != nil {
		r.memo.store(key, best, lo, hi)
	}
	return best
}
