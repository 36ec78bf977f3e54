package agent

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

const tactical = `
	A A . A A
	. A B A .
	B . . . A
	. B . B .
	B B . B B`

func TestTierText(t *testing.T) {
	for _, tier := range []Tier{Easy, Medium, Hard, Expert} {
		text, err := tier.MarshalText()
		require.NoError(t, err)

		var got Tier
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, tier, got)
	}

	got, err := ParseTier("HARD")
	require.NoError(t, err)
	require.Equal(t, Hard, got, "Tier names are case insensitive")

	_, err = ParseTier("grandmaster")
	require.Error(t, err)
	_, err = Tier(9).MarshalText()
	require.Error(t, err)
}

func TestChooseWithoutMoves(t *testing.T) {
	state := stateOf(t, `
		A B B . .
		B B . . .
		B . B . .
		. . . . .
		. . . . .`, game.SideA)
	p := NewPolicy(WithSeed(1))

	for _, tier := range []Tier{Easy, Medium, Hard, Expert} {
		_, ok := p.Choose(state, tier)
		require.False(t, ok, "%s should have nothing to play", tier)
	}
}

func TestChooseReturnsLegalMoves(t *testing.T) {
	p := NewPolicy(WithSeed(3))
	state := stateOf(t, tactical, game.SideB)

	for _, tier := range []Tier{Easy, Medium, Hard, Expert} {
		d, ok := p.Choose(state, tier)

		require.True(t, ok)
		require.True(t, state.IsLegal(d.Move), "%s picked %v", tier, d.Move)
		require.Equal(t, tier, d.Tier)
		require.Equal(t, tier != Easy, d.Searched)
	}
}

func TestSearchTiersAreDeterministic(t *testing.T) {
	state := stateOf(t, tactical, game.SideA)

	for _, tier := range []Tier{Medium, Hard, Expert} {
		first, ok := NewPolicy(WithSeed(1)).Choose(state, tier)
		require.True(t, ok)
		second, _ := NewPolicy(WithSeed(99)).Choose(state, tier)

		require.Equal(t, first.Move, second.Move, "%s should not depend on randomness", tier)
	}
}

func TestEasy(t *testing.T) {
	// SideA has exactly one capture among many quiet moves.
	state := stateOf(t, `
		A B . . .
		. . . . .
		. . . . .
		. . . . .
		A . . . B`, game.SideA)
	capture := game.Move{From: game.Point{Row: 0, Col: 0}, To: game.Point{Row: 0, Col: 2}}

	t.Run("always captures with full bias", func(t *testing.T) {
		p := NewPolicy(WithSeed(5), WithCaptureBias(1))
		for i := 0; i < 20; i++ {
			d, ok := p.Choose(state, Easy)
			require.True(t, ok)
			require.Equal(t, capture, d.Move)
		}
	})

	t.Run("ignores the bias at zero but stays legal", func(t *testing.T) {
		p := NewPolicy(WithSeed(5), WithCaptureBias(0))
		seen := map[game.Move]bool{}
		for i := 0; i < 200; i++ {
			d, _ := p.Choose(state, Easy)
			require.True(t, state.IsLegal(d.Move))
			seen[d.Move] = true
		}
		require.Greater(t, len(seen), 1, "Uniform choice should vary")
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a := NewPolicy(WithSeed(11))
		b := NewPolicy(WithSeed(11))
		for i := 0; i < 10; i++ {
			da, _ := a.Choose(state, Easy)
			db, _ := b.Choose(state, Easy)
			require.Equal(t, da.Move, db.Move)
		}
	})

	t.Run("out of range bias is ignored", func(t *testing.T) {
		require.InDelta(t, 0.3, NewPolicy(WithCaptureBias(2)).captureBias, 1e-9)
	})
}

func TestHardTakesTheLastPiece(t *testing.T) {
	state := stateOf(t, `
		. . . . .
		. . . . .
		. A B . .
		. . . . .
		A . . . .`, game.SideA)

	d, ok := NewPolicy().Choose(state, Hard)

	require.True(t, ok)
	require.False(t, d.Searched, "The shortcut skips the search")
	require.Equal(t, game.Move{From: game.Point{Row: 2, Col: 1}, To: game.Point{Row: 2, Col: 3}}, d.Move)
}

func TestTierDepths(t *testing.T) {
	state := stateOf(t, tactical, game.SideA)
	p := NewPolicy(WithTierDepth(Medium, 1), WithTierDepth(Expert, 2), WithTierDepth(Easy, 7), WithMetrics())

	medium, _ := p.Choose(state, Medium)
	expert, _ := p.Choose(state, Expert)

	require.Equal(t, 1, medium.Search.Depth)
	require.Equal(t, 2, expert.Search.Depth)
	require.Equal(t, 2, expert.Search.Metrics.Depth)
	require.NotContains(t, p.depths, Easy, "Easy never searches")
}
