package main

import (
	"baghbandi/agent"
	"baghbandi/config"
	"baghbandi/experiments"
	"baghbandi/experiments/metrics"
	"baghbandi/game"
	"baghbandi/gamemaster"
	"baghbandi/player"
	"baghbandi/store"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "baghbandi.yaml", "YAML config file")
	mode := flag.String("mode", "play", "play (terminal game) or match (computer vs computer)")
	opponent := flag.String("ai", "B", "side played by the computer in play mode: A, B or none")
	tier := flag.String("tier", "medium", "computer strength: easy, medium, hard or expert")
	fresh := flag.Bool("new", false, "ignore any saved game")
	ladder := flag.Bool("ladder", false, "match mode: play every tier against every other")
	tierA := flag.String("a", "hard", "match mode: tier playing side A")
	tierB := flag.String("b", "medium", "match mode: tier playing side B")
	games := flag.Int("games", 0, "match mode: games per match up (0 uses the config)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "play":
		err = play(cfg, *opponent, *tier, *seed, *fresh)
	case "match":
		err = match(cfg, *ladder, *tierA, *tierB, *games, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(*mode)
	}
}

func play(cfg config.Config, opponent, tierName string, seed uint64, fresh bool) error {
	options := []gamemaster.Option{
		gamemaster.WithRules(cfg.GameRules()),
		gamemaster.WithPolicy(agent.NewPolicy(append(cfg.PolicyOptions(), agent.WithSeed(seed))...)),
	}
	if opponent != "none" {
		side, err := game.ParseSide(opponent)
		if err != nil || side == game.Empty {
			return fmt.Errorf("bad computer side %q", opponent)
		}
		tier, err := agent.ParseTier(tierName)
		if err != nil {
			return err
		}
		options = append(options, gamemaster.WithAI(side, tier))
	}

	save := store.NewFile(cfg.SavePath)
	session := gamemaster.NewSession(options...)
	if !fresh && save.Playable() {
		var resumed bool
		session, resumed = save.LoadOrNew(options...)
		if resumed {
			log.Info().Msgf("resumed saved game from %s", save.Path)
		}
	}
	return player.NewTerminal(session, save, os.Stdin, os.Stdout).Run()
}

func match(cfg config.Config, ladder bool, tierA, tierB string, games int, seed uint64) error {
	if games <= 0 {
		games = cfg.Experiments.Games
	}
	settings := experiments.Settings{
		Games:    games,
		Seed:     seed,
		MaxTurns: cfg.Experiments.MaxTurns,
		Rules:    cfg.GameRules(),
		OutDir:   cfg.Experiments.OutDir,
	}

	var summary experiments.Summary
	var err error
	if ladder {
		summary, err = experiments.RunTierLadder(settings)
	} else {
		a, b, parseErr := matchConfigs(cfg, tierA, tierB)
		if parseErr != nil {
			return parseErr
		}
		summary, err = experiments.RunMatch(settings, a, b)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%d games, %d undecided\n", summary.Games, summary.Draws)
	for id, wins := range summary.Wins {
		fmt.Printf("agent %d: %d wins\n", id, wins)
	}
	if summary.Dir != "" {
		fmt.Printf("records written to %s\n", summary.Dir)
	}
	return nil
}

func matchConfigs(cfg config.Config, tierA, tierB string) (metrics.AgentConfig, metrics.AgentConfig, error) {
	a, err := agent.ParseTier(tierA)
	if err != nil {
		return metrics.AgentConfig{}, metrics.AgentConfig{}, err
	}
	b, err := agent.ParseTier(tierB)
	if err != nil {
		return metrics.AgentConfig{}, metrics.AgentConfig{}, err
	}
	return metrics.AgentConfig{ID: 1, Tier: a, Depth: cfg.Depths[a.String()], CaptureBias: cfg.CaptureBias},
		metrics.AgentConfig{ID: 2, Tier: b, Depth: cfg.Depths[b.String()], CaptureBias: cfg.CaptureBias},
		nil
}
