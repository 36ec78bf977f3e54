package experiments

import (
	"baghbandi/agent"
	"baghbandi/engine"
	"baghbandi/experiments/metrics"
	"baghbandi/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Settings describe one batch of computer-vs-computer games.
type Settings struct {
	Games    int // per match up
	Seed     uint64
	MaxTurns int
	Rules    game.Rules
	OutDir   string // no CSV output when empty
}

var tierConfigs = []metrics.AgentConfig{
	{ID: 1, Tier: agent.Easy},
	{ID: 2, Tier: agent.Medium},
	{ID: 3, Tier: agent.Hard},
	{ID: 4, Tier: agent.Expert},
}

// RunTierLadder pairs every tier against every other tier, both ways round
// so each plays first as often as second.
func RunTierLadder(settings Settings) (Summary, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, a := range tierConfigs {
		for _, b := range tierConfigs {
			if a.ID != b.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{a, b})
			}
		}
	}
	return runExperiment("tier_ladder", settings, tierConfigs, matchUps)
}

// RunMatch plays a single match up between two configs.
func RunMatch(settings Settings, a, b metrics.AgentConfig) (Summary, error) {
	if a.ID == b.ID {
		b.ID = a.ID + 1
	}
	return runExperiment("match", settings, []metrics.AgentConfig{a, b}, [][]metrics.AgentConfig{{a, b}})
}

// Summary counts wins per agent config ID.
type Summary struct {
	Games int
	Wins  map[int]int
	Draws int // games stopped at the turn limit
	Dir   string
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	count := 0
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			count++
			result, gameMetric, moveMetrics := runGame(settings, uint64(count), config1, config2)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch result.Winner {
			case game.SideA:
				summary.Wins[config1.ID]++
			case game.SideB:
				summary.Wins[config2.ID]++
			default:
				summary.Draws++
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Winner)
		}
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", name)

	if settings.OutDir == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(settings.OutDir, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return summary, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	log.Info().Msgf("stored records in %s", summary.Dir)
	return summary, nil
}

// runGame plays config1 as SideA against config2 as SideB.
func runGame(settings Settings, id uint64, config1, config2 metrics.AgentConfig) (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	a := engine.Player{Policy: createPolicy(config1, settings.Seed+2*id), Tier: config1.Tier}
	b := engine.Player{Policy: createPolicy(config2, settings.Seed+2*id+1), Tier: config2.Tier}

	options := []engine.Option{engine.WithCollector(metrics.NewCollector())}
	if settings.MaxTurns > 0 {
		options = append(options, engine.WithMaxTurns(settings.MaxTurns))
	}
	return engine.NewLocalEngine(settings.Rules, a, b, options...).Run()
}

func createPolicy(config metrics.AgentConfig, seed uint64) *agent.Policy {
	options := []agent.Option{agent.WithSeed(seed), agent.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, agent.WithTierDepth(config.Tier, config.Depth))
	}
	if config.CaptureBias > 0 {
		options = append(options, agent.WithCaptureBias(config.CaptureBias))
	}
	return agent.NewPolicy(options...)
}
