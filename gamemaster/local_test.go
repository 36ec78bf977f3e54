package gamemaster

import (
	"baghbandi/agent"
	"baghbandi/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const chainLayout = `
	A B . . .
	. . B . .
	. . . . .
	. . . . .
	A . . . B`

func sessionOf(t *testing.T, layout string, toMove game.Side, options ...Option) *Session {
	t.Helper()
	b, err := game.ParseBoard(layout)
	require.NoError(t, err)

	s := NewSession(options...)
	r := s.Export()
	for i, side := range b {
		r.Cells[i] = side.String()
	}
	r.ToMove = toMove.String()
	require.NoError(t, s.Import(r))
	return s
}

func pt(r, c int) game.Point {
	return game.Point{Row: r, Col: c}
}

func TestSelect(t *testing.T) {
	s := NewSession()
	require.Equal(t, Idle, s.Phase())

	require.ErrorIs(t, s.Select(pt(3, 0)), ErrInvalidSelection, "SideB piece on SideA's turn")
	require.ErrorIs(t, s.Select(pt(2, 2)), ErrInvalidSelection, "Empty point")
	require.ErrorIs(t, s.Select(pt(5, 0)), ErrInvalidSelection, "Off the board")
	require.Equal(t, Idle, s.Phase())

	require.NoError(t, s.Select(pt(1, 1)))
	from, options, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, pt(1, 1), from)
	require.True(t, options.Allows(pt(2, 2)))

	t.Run("selecting another piece moves the selection", func(t *testing.T) {
		require.NoError(t, s.Select(pt(1, 0)))
		from, _, _ := s.Selected()
		require.Equal(t, pt(1, 0), from)
	})

	t.Run("selecting the same piece deselects it", func(t *testing.T) {
		require.NoError(t, s.Select(pt(1, 0)))
		require.Equal(t, Idle, s.Phase())
		_, _, ok := s.Selected()
		require.False(t, ok)
	})
}

func TestApply(t *testing.T) {
	s := NewSession()

	_, err := s.Apply(pt(1, 1), pt(2, 2))
	require.ErrorIs(t, err, ErrInvalidSelection, "Nothing selected")

	require.NoError(t, s.Select(pt(1, 1)))
	before := s.State()
	_, err = s.Apply(pt(1, 1), pt(3, 3))
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, before, s.State(), "Rejected input should not change the game")
	require.Equal(t, Selected, s.Phase())

	applied, err := s.Apply(pt(1, 1), pt(2, 2))
	require.NoError(t, err)
	require.False(t, applied.Captured)
	require.False(t, applied.Result.Over())
	require.Equal(t, game.SideB, applied.State.ToMove)
	require.Equal(t, Idle, s.Phase())
	require.Equal(t, applied.State, s.State())
}

func TestMandatoryChain(t *testing.T) {
	s := sessionOf(t, chainLayout, game.SideA)

	require.NoError(t, s.Select(pt(0, 0)))
	applied, err := s.Apply(pt(0, 0), pt(0, 2))
	require.NoError(t, err)
	require.True(t, applied.Captured)
	require.Equal(t, Chaining, s.Phase())
	require.Equal(t, game.SideA, s.State().ToMove)

	from, options, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, pt(0, 2), from, "The capturing piece stays selected")
	require.Empty(t, options.Steps, "Only captures may continue a chain")

	t.Run("other pieces cannot be selected", func(t *testing.T) {
		require.ErrorIs(t, s.Select(pt(4, 0)), ErrInvalidSelection)
		require.NoError(t, s.Select(pt(0, 2)), "Re-selecting the chaining piece is harmless")
		require.Equal(t, Chaining, s.Phase())
	})

	t.Run("simple moves are refused", func(t *testing.T) {
		_, err := s.Apply(pt(0, 2), pt(0, 3))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, Chaining, s.Phase())
	})

	t.Run("the chain ends when no capture is left", func(t *testing.T) {
		applied, err := s.Apply(pt(0, 2), pt(2, 2))
		require.NoError(t, err)
		require.True(t, applied.Captured)
		require.Equal(t, Idle, s.Phase())
		require.Equal(t, game.SideB, s.State().ToMove)
	})
}

func TestGameOver(t *testing.T) {
	s := sessionOf(t, `
		A B . . .
		. . . . .
		. . . . .
		. . . . .
		. . . . .`, game.SideA)

	require.NoError(t, s.Select(pt(0, 0)))
	applied, err := s.Apply(pt(0, 0), pt(0, 2))
	require.NoError(t, err)
	require.Equal(t, game.Result{Winner: game.SideA, Reason: game.Elimination}, applied.Result)
	require.Equal(t, Over, s.Phase())

	require.ErrorIs(t, s.Select(pt(0, 2)), ErrGameOver)
	_, err = s.Apply(pt(0, 2), pt(0, 3))
	require.ErrorIs(t, err, ErrGameOver)

	s.Restart()
	require.Equal(t, Idle, s.Phase())
	require.Equal(t, game.NewState(nil).Board, s.State().Board)
}

func TestExportImport(t *testing.T) {
	t.Run("mid game", func(t *testing.T) {
		s := NewSession(WithAI(game.SideB, agent.Hard))
		require.NoError(t, s.Select(pt(1, 1)))
		_, err := s.Apply(pt(1, 1), pt(2, 2))
		require.NoError(t, err)

		r := s.Export()
		require.Len(t, r.Cells, game.Size*game.Size)
		require.Equal(t, ModeComputer, r.Mode)
		require.Equal(t, "B", r.AISide)
		require.Equal(t, "hard", r.Tier)

		restored := NewSession()
		require.NoError(t, restored.Import(r))
		require.Equal(t, s.State(), restored.State())
		seat, ok := restored.AI()
		require.True(t, ok)
		require.Equal(t, Seat{Side: game.SideB, Tier: agent.Hard}, seat)
		require.True(t, restored.AITurn())
	})

	t.Run("pending chain", func(t *testing.T) {
		s := sessionOf(t, chainLayout, game.SideA)
		require.NoError(t, s.Select(pt(0, 0)))
		_, err := s.Apply(pt(0, 0), pt(0, 2))
		require.NoError(t, err)

		r := s.Export()
		require.Equal(t, ModeFriends, r.Mode)
		require.NotNil(t, r.ChainFrom)

		restored := NewSession()
		require.NoError(t, restored.Import(r))
		require.Equal(t, s.State(), restored.State())
		require.Equal(t, Chaining, restored.Phase())
		from, _, _ := restored.Selected()
		require.Equal(t, pt(0, 2), from)
	})
}

func TestImportRejectsCorruptRecords(t *testing.T) {
	valid := NewSession().Export()

	corrupt := map[string]func(r *Record){
		"short grid":      func(r *Record) { r.Cells = r.Cells[:24] },
		"unknown cell":    func(r *Record) { r.Cells[12] = "X" },
		"too many pieces": func(r *Record) { r.Cells[12] = "A" },
		"nobody to move":  func(r *Record) { r.ToMove = "." },
		"idle chain":      func(r *Record) { p := pt(1, 1); r.ChainFrom = &p },
		"empty chain":     func(r *Record) { p := pt(2, 2); r.ChainFrom = &p },
		"unknown mode":    func(r *Record) { r.Mode = "online" },
		"unknown tier":    func(r *Record) { r.Mode, r.AISide, r.Tier = ModeComputer, "B", "godlike" },
		"no ai side":      func(r *Record) { r.Mode, r.AISide, r.Tier = ModeComputer, "", "easy" },
		"wrong winner":    func(r *Record) { r.Winner = "A" },
	}

	for name, mutate := range corrupt {
		t.Run(name, func(t *testing.T) {
			s := NewSession()
			require.NoError(t, s.Select(pt(1, 1)))
			_, err := s.Apply(pt(1, 1), pt(2, 2))
			require.NoError(t, err)
			before := s.State()

			r := valid
			r.Cells = append([]string(nil), valid.Cells...)
			mutate(&r)

			require.Error(t, s.Import(r))
			require.Equal(t, before, s.State(), "A rejected record should leave the session alone")
		})
	}
}

func TestThinkAccept(t *testing.T) {
	policy := agent.NewPolicy(agent.WithSeed(1))
	s := NewSession(WithAI(game.SideB, agent.Medium), WithPolicy(policy))

	_, err := s.Think()
	require.ErrorIs(t, err, ErrNotAITurn)

	require.NoError(t, s.Select(pt(1, 1)))
	_, err = s.Apply(pt(1, 1), pt(2, 2))
	require.NoError(t, err)

	require.True(t, s.AITurn())
	require.ErrorIs(t, s.Select(pt(3, 3)), ErrNotYourTurn)
	_, err = s.Apply(pt(3, 3), pt(2, 3))
	require.ErrorIs(t, err, ErrNotYourTurn)

	proposals, err := s.Think()
	require.NoError(t, err)
	require.True(t, s.Thinking())

	_, err = s.Think()
	require.ErrorIs(t, err, ErrThinking)

	var p Proposal
	require.Eventually(t, func() bool {
		var ok bool
		p, ok = Poll(proposals)
		return ok
	}, 5*time.Second, time.Millisecond)
	require.True(t, p.Found)

	before := s.State()
	require.True(t, before.IsLegal(p.Decision.Move))

	applied, err := s.Accept(p)
	require.NoError(t, err)
	require.Equal(t, p.Decision.Move, applied.Move)
	require.False(t, s.Thinking())
	require.NotEqual(t, before.Board, s.State().Board)
}

func TestStaleProposal(t *testing.T) {
	s := NewSession(WithAI(game.SideA, agent.Easy))
	require.True(t, s.AITurn(), "The computer opens when it plays SideA")

	proposals, err := s.Think()
	require.NoError(t, err)
	p := <-proposals

	s.Restart()
	_, err = s.Accept(p)
	require.ErrorIs(t, err, ErrStaleProposal)
	require.Equal(t, game.NewState(nil).Board, s.State().Board)

	applied, err := s.Respond()
	require.NoError(t, err)
	require.Equal(t, game.SideA, applied.State.Board.At(applied.Move.To))
}
