package engine

import (
	"baghbandi/agent"
	"baghbandi/experiments/metrics"
	"baghbandi/game"
	"baghbandi/meta"

	"github.com/rs/zerolog/log"
)

// Player is a computer opponent seated on one side.
type Player struct {
	Policy *agent.Policy
	Tier   agent.Tier
}

type Option func(e *LocalEngine)

// WithMaxTurns caps the number of plies before the game is abandoned.
func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func WithState(state game.State) Option {
	return func(e *LocalEngine) {
		e.State = state.Copy()
	}
}

// LocalEngine plays two computer opponents against each other in-process.
type LocalEngine struct {
	State     game.State
	players   map[game.Side]Player
	maxTurns  int
	collector metrics.Collector
}

func NewLocalEngine(rules game.Rules, a, b Player, options ...Option) *LocalEngine {
	if a.Policy == nil || b.Policy == nil {
		panic("both players need a policy")
	}
	e := &LocalEngine{
		State:     game.NewState(rules),
		players:   map[game.Side]Player{game.SideA: a, game.SideB: b},
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a winner is found.
func (e *LocalEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	log.Info().Msgf("side %s is starting", e.State.ToMove)
	e.collector.Start(e.State.ToMove)

	for turn := 1; !e.State.Result.Over() && turn <= e.maxTurns; turn++ {
		side := e.State.ToMove
		player := e.players[side]

		d, ok := player.Policy.Choose(e.State, player.Tier)
		if !ok {
			// The result is judged after every ply, so this cannot happen mid-game.
			panic("no legal moves in an undecided game")
		}

		next, captured := e.State.Play(d.Move)
		e.collector.AddMove(side, d, captured)
		e.State = next
	}

	if e.State.Result.Over() {
		log.Info().Msgf("side %s wins by %s", e.State.Result.Winner, e.State.Result.Reason)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}

	gameMetric, moveMetrics := e.collector.Complete(e.State.Result)
	return e.State.Result, gameMetric, moveMetrics
}
