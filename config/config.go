package config

import (
	"baghbandi/agent"
	"baghbandi/game"
	"baghbandi/meta"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Rules       string         `yaml:"rules"`
	LogLevel    string         `yaml:"log_level"`
	SavePath    string         `yaml:"save_path"`
	CaptureBias float64        `yaml:"capture_bias"`
	Depths      map[string]int `yaml:"depths"`
	Experiments Experiments    `yaml:"experiments"`
}

type Experiments struct {
	Games    int    `yaml:"games"`
	MaxTurns int    `yaml:"max_turns"`
	OutDir   string `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Rules:       "standard",
		LogLevel:    "info",
		SavePath:    "baghbandi_save.json",
		CaptureBias: meta.EASY_CAPTURE_BIAS,
		Depths: map[string]int{
			agent.Medium.String(): meta.MEDIUM_DEPTH,
			agent.Hard.String():   meta.HARD_DEPTH,
			agent.Expert.String(): meta.EXPERT_MAX_DEPTH,
		},
		Experiments: Experiments{
			Games:    10,
			MaxTurns: meta.MAX_TURNS,
			OutDir:   "experiments",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if _, err := game.RulesByName(c.Rules); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.CaptureBias < 0 || c.CaptureBias > 1 {
		return fmt.Errorf("capture_bias %v is not a probability", c.CaptureBias)
	}
	for name, depth := range c.Depths {
		tier, err := agent.ParseTier(name)
		if err != nil {
			return fmt.Errorf("depths: %w", err)
		}
		if tier == agent.Easy {
			return errors.New("depths: easy does not search")
		}
		if depth <= 0 {
			return fmt.Errorf("depths: %s depth must be positive, got %d", name, depth)
		}
	}
	if c.Experiments.Games < 0 || c.Experiments.MaxTurns < 0 {
		return errors.New("experiments: games and max_turns must not be negative")
	}
	return nil
}

func (c Config) GameRules() game.Rules {
	rules, err := game.RulesByName(c.Rules)
	if err != nil {
		panic(err)
	}
	return rules
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// PolicyOptions turns the configured tier settings into policy options.
func (c Config) PolicyOptions() []agent.Option {
	options := []agent.Option{agent.WithCaptureBias(c.CaptureBias)}
	for name, depth := range c.Depths {
		if tier, err := agent.ParseTier(name); err == nil {
			options = append(options, agent.WithTierDepth(tier, depth))
		}
	}
	return options
}
