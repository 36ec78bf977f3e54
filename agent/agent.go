package agent

import (
	"baghbandi/game"
	"baghbandi/meta"
	"baghbandi/searcher"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(p *Policy)

// Decision is a chosen move plus how it was found.
type Decision struct {
	Move     game.Move
	Tier     Tier
	Searched bool
	Search   searcher.Result
}

// Policy maps a tier onto a way of choosing moves. Only Easy and the Expert
// fallback draw random numbers, so the other tiers are deterministic.
type Policy struct {
	mu          sync.Mutex
	rng         *rand.Rand
	captureBias float64
	depths      map[Tier]int
	weights     game.Weights
	metrics     bool
}

func WithSeed(seed uint64) Option {
	return func(p *Policy) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCaptureBias sets how often Easy insists on capturing when it can.
func WithCaptureBias(probability float64) Option {
	return func(p *Policy) {
		if probability >= 0 && probability <= 1 {
			p.captureBias = probability
		}
	}
}

func WithTierDepth(tier Tier, depth int) Option {
	return func(p *Policy) {
		if depth > 0 && tier > Easy && tier <= Expert {
			p.depths[tier] = depth
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(p *Policy) {
		p.weights = weights
	}
}

func WithMetrics() Option {
	return func(p *Policy) {
		p.metrics = true
	}
}

func NewPolicy(options ...Option) *Policy {
	p := &Policy{
		rng:         rand.New(rand.NewSource(rand.Uint64())),
		captureBias: meta.EASY_CAPTURE_BIAS,
		depths: map[Tier]int{
			Medium: meta.MEDIUM_DEPTH,
			Hard:   meta.HARD_DEPTH,
			Expert: meta.EXPERT_MAX_DEPTH,
		},
		weights: game.DefaultWeights(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Choose picks a move for the side to move in state. It reports false when
// there is nothing to play.
func (p *Policy) Choose(state game.State, tier Tier) (Decision, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Decision{}, false
	}

	switch tier {
	case Easy:
		return Decision{Move: p.easy(moves), Tier: tier}, true
	case Medium:
		return p.search(state, tier, searcher.WithDepth(p.depths[Medium]))
	case Hard:
		if m, ok := finishingCapture(state, moves); ok {
			log.Debug().Str("move", m.String()).Msg("taking the last piece")
			return Decision{Move: m, Tier: tier}, true
		}
		return p.search(state, tier,
			searcher.WithDepth(p.depths[Hard]),
			searcher.WithOrdering(),
			searcher.WithTranspositions())
	case Expert:
		d, ok := p.search(state, tier,
			searcher.WithDepth(p.depths[Expert]),
			searcher.WithIterativeDeepening(),
			searcher.WithOrdering(),
			searcher.WithTranspositions())
		if !ok {
			log.Warn().Msg("expert search found no move, falling back to a random one")
			return Decision{Move: p.easy(moves), Tier: tier}, true
		}
		return d, true
	}
	panic("unknown tier " + tier.String())
}

func (p *Policy) search(state game.State, tier Tier, options ...searcher.Option) (Decision, bool) {
	options = append(options, searcher.WithWeights(p.weights))
	if p.metrics {
		options = append(options, searcher.WithMetrics())
	}
	result, ok := searcher.NewSearcher(options...).Search(state)
	if !ok {
		return Decision{}, false
	}
	return Decision{Move: result.Move, Tier: tier, Searched: true, Search: result}, true
}

// easy captures with probability captureBias when it can, otherwise it
// picks any legal move.
func (p *Policy) easy(moves []game.Move) game.Move {
	p.mu.Lock()
	defer p.mu.Unlock()

	var captures []game.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 && p.rng.Float64() < p.captureBias {
		return captures[p.rng.Intn(len(captures))]
	}
	return moves[p.rng.Intn(len(moves))]
}

// finishingCapture finds a capture that removes the opponent's last piece.
func finishingCapture(state game.State, moves []game.Move) (game.Move, bool) {
	if state.Board.Count(state.ToMove.Opponent()) != 1 {
		return game.Move{}, false
	}
	for _, m := range moves {
		if m.IsCapture() {
			return m, true
		}
	}
	return game.Move{}, false
}
