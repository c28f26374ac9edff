package experiments

import (
	"context"
	"fmt"
	"time"

	"blokus/engine"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/meta"
	"blokus/searcher"
	"blokus/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// TimeBudget bounds each search in the built-in experiments.
const TimeBudget = 100 * time.Millisecond

const (
	KindMinimax = "minimax"
	KindGreedy  = "greedy"
	KindRandom  = "random"
)

// MatchUp seats one agent config per player. Seats rotate from game to game
// so that every config gets to start.
type MatchUp [game.NumPlayers]metrics.AgentConfig

type Config struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
	meta.Experiment
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // By AgentConfig.ID
	Dir   string      // Empty when nothing was written
}

// Run plays the configured number of games for each matchup, in parallel, and
// writes the records under OutDir when it is set.
func Run(ctx context.Context, config Config) (Result, error) {
	if config.Games <= 0 {
		return Result{}, fmt.Errorf("%w: games must be positive", meta.ErrInvalidConfig)
	}
	for _, matchUp := range config.MatchUps {
		for _, ac := range matchUp {
			if _, err := NewAgent(ac); err != nil {
				return Result{}, err
			}
		}
	}

	total := len(config.MatchUps) * config.Games
	games := make([]metrics.GameRecord, total)
	moves := make([][]metrics.MoveRecord, total)

	log.Info().Msgf("starting %s experiment with %d games...", config.Name, total)

	g, ctx := errgroup.WithContext(ctx)
	if config.Parallel > 0 {
		g.SetLimit(config.Parallel)
	}
	for mi, matchUp := range config.MatchUps {
		mi, matchUp := mi, matchUp
		for i := 0; i < config.Games; i++ {
			i := i
			id := mi*config.Games + i + 1
			g.Go(func() error {
				seats := rotate(matchUp, i)
				setup := gamemaster.RandomSetup(config.BoardSize, config.Craters, config.Bonus, config.Seed+uint64(id))

				winner, gameMetric, moveMetrics, err := runGame(ctx, setup, seats)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}

				record := metrics.GameRecord{ID: id, GameMetric: gameMetric}
				for seat, ac := range seats {
					record.Agents[seat] = ac.ID
				}
				games[id-1] = record
				for _, mm := range moveMetrics {
					moves[id-1] = append(moves[id-1], metrics.MoveRecord{Game: id, MoveMetric: mm})
				}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(config.MatchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	result := Result{Games: games, Wins: make(map[int]int)}
	for i, record := range games {
		result.Moves = append(result.Moves, moves[i]...)
		if record.Winner >= 0 {
			result.Wins[record.Agents[record.Winner]]++
		}
	}

	if config.OutDir == "" {
		return result, nil
	}
	dir, err := store(config, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

func store(config Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(config.OutDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteAgentConfigs(config.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func rotate(matchUp MatchUp, shift int) MatchUp {
	var seats MatchUp
	for seat := range seats {
		seats[seat] = matchUp[(seat+shift)%game.NumPlayers]
	}
	return seats
}

// runGame executes a single game between four agents and returns the winner
func runGame(ctx context.Context, setup gamemaster.Setup, configs MatchUp) (game.Seat, metrics.GameMetric, []metrics.MoveMetric, error) {
	var agents [game.NumPlayers]agent.Agent
	for seat, ac := range configs {
		a, err := NewAgent(ac)
		if err != nil {
			return -1, metrics.GameMetric{}, nil, err
		}
		agents[seat] = a
	}

	e, err := engine.LocalEngine(setup, agents)
	if err != nil {
		return -1, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}

// NewAgent builds a fresh agent. Minimax agents are not safe to share
// between games.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindMinimax:
		return agent.NewMinimaxAgent(createMinimax(config)), nil
	case KindGreedy:
		return agent.NewGreedyAgent(), nil
	case KindRandom:
		return agent.NewRandomAgent(config.Seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", meta.ErrInvalidConfig, config.Kind)
	}
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{searcher.WithDepth(config.Depth)}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(config.NodeBudget))
	}
	if config.Weights != (game.Weights{}) {
		options = append(options, searcher.WithWeights(config.Weights))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}
