package meta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"blokus/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parameters of the player. Zero values in a config
// file keep the defaults.
type Config struct {
	Depth      int           `yaml:"depth"`
	Timeout    time.Duration `yaml:"timeout"`
	NodeBudget int           `yaml:"node_budget"`
	LogLevel   string        `yaml:"log_level"`
	Weights    game.Weights  `yaml:"weights"`
	Experiment Experiment    `yaml:"experiment"`
}

type Experiment struct {
	Games     int    `yaml:"games"` // Per matchup
	Parallel  int    `yaml:"parallel"`
	BoardSize int    `yaml:"board_size"`
	Craters   int    `yaml:"craters"`
	Bonus     int    `yaml:"bonus"`
	Seed      uint64 `yaml:"seed"`
	OutDir    string `yaml:"out_dir"`
}

func DefaultConfig() Config {
	return Config{
		Depth:      DEPTH,
		Timeout:    TIMEOUT,
		NodeBudget: NODE_BUDGET,
		LogLevel:   zerolog.InfoLevel.String(),
		Weights:    game.DefaultWeights(),
		Experiment: Experiment{
			Games:     10,
			Parallel:  GO_ROUTINES,
			BoardSize: BOARD_SIZE,
			Craters:   0,
			Bonus:     5,
			Seed:      1,
			OutDir:    "experiments",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("depth %d is negative: %w", c.Depth, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %v is negative: %w", c.Timeout, ErrInvalidConfig)
	}
	if c.NodeBudget < 0 {
		return fmt.Errorf("node budget %d is negative: %w", c.NodeBudget, ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Experiment.BoardSize < 1 {
		return fmt.Errorf("board size %d: %w", c.Experiment.BoardSize, ErrInvalidConfig)
	}
	return nil
}

// SetupLogging points the global logger at w, which must not be the move channel.
func SetupLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, ErrInvalidConfig)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	return nil
}
