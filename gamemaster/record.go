package gamemaster

import (
	"baghbandi/agent"
	"baghbandi/game"
	"fmt"
)

const (
	ModeFriends  = "friends"
	ModeComputer = "computer"
)

// Record is a flat snapshot of a session: the grid row by row, the side to
// move, any pending chain and the computer seat.
type Record struct {
	Cells     []string    `json:"cells" yaml:"cells"`
	ToMove    string      `json:"to_move" yaml:"to_move"`
	ChainFrom *game.Point `json:"chain_from,omitempty" yaml:"chain_from,omitempty"`
	Winner    string      `json:"winner" yaml:"winner"`
	Mode      string      `json:"mode" yaml:"mode"`
	AISide    string      `json:"ai_side,omitempty" yaml:"ai_side,omitempty"`
	Tier      string      `json:"tier,omitempty" yaml:"tier,omitempty"`
}

func (s *Session) Export() Record {
	r := Record{
		Cells:  make([]string, 0, len(s.state.Board)),
		ToMove: s.state.ToMove.String(),
		Winner: s.state.Result.Winner.String(),
		Mode:   ModeFriends,
	}
	for _, side := range s.state.Board {
		r.Cells = append(r.Cells, side.String())
	}
	if s.state.ChainFrom != nil {
		p := *s.state.ChainFrom
		r.ChainFrom = &p
	}
	if s.ai != nil {
		r.Mode = ModeComputer
		r.AISide = s.ai.Side.String()
		r.Tier = s.ai.Tier.String()
	}
	return r
}

// Import replaces the session with r. The session is untouched when r does
// not describe a reachable position.
func (s *Session) Import(r Record) error {
	state, seat, err := r.decode(s.rules)
	if err != nil {
		return err
	}
	s.ai = seat
	s.reset(state)
	return nil
}

func (r Record) decode(rules game.Rules) (game.State, *Seat, error) {
	state := game.NewState(rules)
	if len(r.Cells) != len(state.Board) {
		return game.State{}, nil, fmt.Errorf("record has %d cells, want %d", len(r.Cells), len(state.Board))
	}
	for i, cell := range r.Cells {
		side, err := game.ParseSide(cell)
		if err != nil {
			return game.State{}, nil, fmt.Errorf("cell %d: %w", i, err)
		}
		state.Board[i] = side
	}
	if err := state.Board.Check(); err != nil {
		return game.State{}, nil, err
	}

	toMove, err := game.ParseSide(r.ToMove)
	if err != nil || toMove == game.Empty {
		return game.State{}, nil, fmt.Errorf("bad side to move %q", r.ToMove)
	}
	state.ToMove = toMove

	if r.ChainFrom != nil {
		p := *r.ChainFrom
		if state.Board.At(p) != toMove {
			return game.State{}, nil, fmt.Errorf("chain origin %v does not hold a piece of side %s", p, toMove)
		}
		if len(game.JumpsFrom(state.Rules, &state.Board, p)) == 0 {
			return game.State{}, nil, fmt.Errorf("chain origin %v has no capture to continue", p)
		}
		state.ChainFrom = &p
	}
	state.Rejudge()
	if winner, err := game.ParseSide(r.Winner); err != nil || winner != state.Result.Winner {
		return game.State{}, nil, fmt.Errorf("recorded winner %q does not match the position", r.Winner)
	}

	switch r.Mode {
	case ModeFriends, "":
		return state, nil, nil
	case ModeComputer:
	default:
		return game.State{}, nil, fmt.Errorf("unknown mode %q", r.Mode)
	}
	side, err := game.ParseSide(r.AISide)
	if err != nil || side == game.Empty {
		return game.State{}, nil, fmt.Errorf("bad computer side %q", r.AISide)
	}
	tier, err := agent.ParseTier(r.Tier)
	if err != nil {
		return game.State{}, nil, err
	}
	return state, &Seat{Side: side, Tier: tier}, nil
}
