package game

import "fmt"

// State is a full position: board, side to move, pending capture chain and
// result. Play never mutates its receiver.
type State struct {
	Board     Board
	ToMove    Side
	ChainFrom *Point // landing point of the last capture while the chain must continue
	Result    Result
	Rules     Rules
}

// NewState returns the opening position with SideA to move.
func NewState(rules Rules) State {
	if rules == nil {
		rules = NewStandardRules()
	}
	return State{
		Board:  NewBoard(),
		ToMove: SideA,
		Rules:  rules,
	}
}

// Copy returns an independent copy. Board is a value so only the chain
// pointer needs care.
func (s State) Copy() State {
	if s.ChainFrom != nil {
		p := *s.ChainFrom
		s.ChainFrom = &p
	}
	return s
}

func (s State) Chaining() bool {
	return s.ChainFrom != nil
}

// OptionsAt lists destinations for the piece on p, honoring whose turn it is
// and any pending chain.
func (s State) OptionsAt(p Point) Options {
	if s.Result.Over() || s.Board.At(p) != s.ToMove {
		return Options{}
	}
	if s.ChainFrom != nil {
		if p != *s.ChainFrom {
			return Options{}
		}
		return Options{Jumps: JumpsFrom(s.Rules, &s.Board, p)}
	}
	return MovesFrom(s.Rules, &s.Board, p)
}

// LegalMoves lists every move the side to move may make.
func (s State) LegalMoves() []Move {
	if s.Result.Over() {
		return nil
	}
	if s.ChainFrom != nil {
		from := *s.ChainFrom
		var moves []Move
		for _, j := range JumpsFrom(s.Rules, &s.Board, from) {
			moves = append(moves, Move{From: from, To: j.Land})
		}
		return moves
	}
	return MovesForSide(s.Rules, &s.Board, s.ToMove)
}

func (s State) IsLegal(m Move) bool {
	return s.OptionsAt(m.From).Allows(m.To)
}

// Play applies a legal move and returns the next state and whether a piece
// was captured. A simple move always ends the turn. A capture keeps the turn
// while another capture is available from the landing point.
func (s State) Play(m Move) (State, bool) {
	if !s.IsLegal(m) {
		panic(fmt.Sprintf("illegal move %v for side %s", m, s.ToMove))
	}
	next := s.Copy()
	Apply(&next.Board, m)

	captured := m.IsCapture()
	next.ChainFrom = nil
	if captured && len(JumpsFrom(next.Rules, &next.Board, m.To)) > 0 {
		land := m.To
		next.ChainFrom = &land
	} else {
		next.ToMove = s.ToMove.Opponent()
	}
	next.Result = next.judge()
	return next, captured
}

// judge decides the game after every ply: elimination first, then whether
// the side to move is immobilized.
func (s *State) judge() Result {
	switch {
	case s.Board.Count(SideA) == 0:
		return Result{Winner: SideB, Reason: Elimination}
	case s.Board.Count(SideB) == 0:
		return Result{Winner: SideA, Reason: Elimination}
	}
	if !HasMoves(s.Rules, &s.Board, s.ToMove) {
		return Result{Winner: s.ToMove.Opponent(), Reason: Immobilization}
	}
	return InProgress
}

// Rejudge recomputes the result, e.g. after importing a position.
func (s *State) Rejudge() {
	s.Result = s.judge()
}
