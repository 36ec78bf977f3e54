package gamemaster

import (
	"baghbandi/agent"
	"baghbandi/game"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver         = errors.New("game is over - no moves allowed")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNotYourTurn      = errors.New("it is the computer's turn")
	ErrNotAITurn        = errors.New("it is not the computer's turn")
	ErrThinking         = errors.New("a search is already in flight")
	ErrStaleProposal    = errors.New("proposal is for an earlier position")
	ErrNoMove           = errors.New("computer has no move")
)

// Phase is where the session is in the select-then-move cycle.
type Phase int

const (
	Idle Phase = iota
	Selected
	Chaining
	Over
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Chaining:
		return "chaining"
	case Over:
		return "over"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Seat is the side played by the computer.
type Seat struct {
	Side game.Side
	Tier agent.Tier
}

// Applied describes the outcome of one move.
type Applied struct {
	Move     game.Move
	State    game.State
	Result   game.Result
	Captured bool
}

type Option func(s *Session)

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithAI hands side to the computer at the given tier.
func WithAI(side game.Side, tier agent.Tier) Option {
	return func(s *Session) {
		if side == game.SideA || side == game.SideB {
			s.ai = &Seat{Side: side, Tier: tier}
		}
	}
}

func WithPolicy(policy *agent.Policy) Option {
	return func(s *Session) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// Session is one game being played. It is owned by a single goroutine (the
// interactive one); only Think hands work to another goroutine, and that
// worker sees a copy of the position.
type Session struct {
	rules    game.Rules
	policy   *agent.Policy
	ai       *Seat
	state    game.State
	phase    Phase
	selected game.Point
	options  game.Options
	turn     int
	thinking atomic.Bool
}

// NewSession starts a new game with SideA to move.
func NewSession(options ...Option) *Session {
	s := &Session{rules: game.NewStandardRules()}
	for _, option := range options {
		option(s)
	}
	if s.policy == nil {
		s.policy = agent.NewPolicy()
	}
	s.reset(game.NewState(s.rules))
	return s
}

// Restart begins a fresh game keeping the rules and the computer seat.
func (s *Session) Restart() {
	s.reset(game.NewState(s.rules))
}

func (s *Session) reset(state game.State) {
	s.state = state
	s.turn++
	s.thinking.Store(false)
	s.settle()
}

// settle derives the phase from the current state.
func (s *Session) settle() {
	s.options = game.Options{}
	switch {
	case s.state.Result.Over():
		s.phase = Over
	case s.state.Chaining():
		s.phase = Chaining
		s.selected = *s.state.ChainFrom
		s.options = s.state.OptionsAt(s.selected)
	default:
		s.phase = Idle
	}
}

// State returns a copy of the current position.
func (s *Session) State() game.State {
	return s.state.Copy()
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Result() game.Result {
	return s.state.Result
}

func (s *Session) AI() (Seat, bool) {
	if s.ai == nil {
		return Seat{}, false
	}
	return *s.ai, true
}

// AITurn reports whether the computer should move next.
func (s *Session) AITurn() bool {
	return s.ai != nil && !s.state.Result.Over() && s.state.ToMove == s.ai.Side
}

func (s *Session) Thinking() bool {
	return s.thinking.Load()
}

// Selected returns the selected piece and its cached destinations.
func (s *Session) Selected() (game.Point, game.Options, bool) {
	if s.phase != Selected && s.phase != Chaining {
		return game.Point{}, game.Options{}, false
	}
	return s.selected, s.options, true
}

// Options lists what the piece on p could do now, for highlighting.
func (s *Session) Options(p game.Point) game.Options {
	return s.state.OptionsAt(p)
}

// Select picks up the piece on p. Selecting the selected piece again puts it
// down. While a capture chain is pending only the chaining piece counts.
func (s *Session) Select(p game.Point) error {
	if s.AITurn() {
		return ErrNotYourTurn
	}
	return s.selectPiece(p)
}

func (s *Session) selectPiece(p game.Point) error {
	switch s.phase {
	case Over:
		return ErrGameOver
	case Chaining:
		if p != s.selected {
			return ErrInvalidSelection
		}
		return nil
	case Selected:
		if p == s.selected {
			s.phase = Idle
			s.options = game.Options{}
			return nil
		}
	}
	if !p.InBounds() || s.state.Board.At(p) != s.state.ToMove {
		return ErrInvalidSelection
	}
	s.selected = p
	s.options = s.state.OptionsAt(p)
	s.phase = Selected
	return nil
}

// Apply moves the selected piece on from to to.
func (s *Session) Apply(from, to game.Point) (Applied, error) {
	if s.AITurn() {
		return Applied{}, ErrNotYourTurn
	}
	return s.apply(from, to)
}

func (s *Session) apply(from, to game.Point) (Applied, error) {
	switch s.phase {
	case Over:
		return Applied{}, ErrGameOver
	case Idle:
		return Applied{}, ErrInvalidSelection
	}
	if from != s.selected || !s.options.Allows(to) {
		return Applied{}, ErrIllegalMove
	}

	move := game.Move{From: from, To: to}
	mover := s.state.ToMove
	next, captured := s.state.Play(move)
	s.state = next
	s.turn++
	s.settle()

	if next.Result.Over() {
		log.Info().Msgf("side %s wins by %s", next.Result.Winner, next.Result.Reason)
	} else {
		log.Debug().Msgf("side %s played %v", mover, move)
	}

	return Applied{
		Move:     move,
		State:    next.Copy(),
		Result:   next.Result,
		Captured: captured,
	}, nil
}

func (s *Session) play(move game.Move) (Applied, error) {
	if s.phase == Selected {
		s.phase = Idle
	}
	if err := s.selectPiece(move.From); err != nil {
		return Applied{}, err
	}
	return s.apply(move.From, move.To)
}
