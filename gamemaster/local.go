package gamemaster

import (
	"baghbandi/agent"

	"github.com/rs/zerolog/log"
)

// Proposal is the computer's answer for the position it was asked about.
type Proposal struct {
	Decision agent.Decision
	Found    bool
	turn     int
}

// Think asks the computer for its move in the background. The search runs on
// a copy of the position and the answer arrives on the returned channel; the
// session only changes when the proposal is handed back to Accept.
func (s *Session) Think() (<-chan Proposal, error) {
	if s.state.Result.Over() {
		return nil, ErrGameOver
	}
	if !s.AITurn() {
		return nil, ErrNotAITurn
	}
	if !s.thinking.CompareAndSwap(false, true) {
		return nil, ErrThinking
	}

	state := s.state.Copy()
	tier := s.ai.Tier
	turn := s.turn
	policy := s.policy

	proposals := make(chan Proposal, 1)
	go func() {
		defer close(proposals)
		decision, found := policy.Choose(state, tier)
		proposals <- Proposal{Decision: decision, Found: found, turn: turn}
	}()
	return proposals, nil
}

// Poll returns a proposal if one is ready without blocking.
func Poll(proposals <-chan Proposal) (Proposal, bool) {
	select {
	case p, ok := <-proposals:
		return p, ok
	default:
		return Proposal{}, false
	}
}

// Accept plays a proposal returned by Think. Proposals for a position that
// has since changed are refused.
func (s *Session) Accept(p Proposal) (Applied, error) {
	s.thinking.Store(false)
	if p.turn != s.turn {
		return Applied{}, ErrStaleProposal
	}
	if !p.Found {
		return Applied{}, ErrNoMove
	}
	applied, err := s.play(p.Decision.Move)
	if err != nil {
		log.Error().Err(err).Msgf("computer proposed %v", p.Decision.Move)
		return Applied{}, err
	}
	return applied, nil
}

// Respond runs Think and waits for the answer.
func (s *Session) Respond() (Applied, error) {
	proposals, err := s.Think()
	if err != nil {
		return Applied{}, err
	}
	return s.Accept(<-proposals)
}
