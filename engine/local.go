package engine

import (
	"context"
	"fmt"
	"time"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/meta"
	"blokus/searcher/agent"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	gm       *gamemaster.GameMaster
	agents   [game.NumPlayers]agent.Agent
	maxMoves int
	start    game.Seat
}

// LocalEngine seats one agent per player around a fresh game.
func LocalEngine(setup gamemaster.Setup, agents [game.NumPlayers]agent.Agent) (Engine, error) {
	for seat, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("no agent for seat %d", seat)
		}
	}
	gm, err := gamemaster.NewGameMaster(setup)
	if err != nil {
		return nil, err
	}
	return &localEngine{
		gm:       gm,
		agents:   agents,
		maxMoves: meta.MAX_TURNS,
		start:    setup.Start,
	}, nil
}

// Run executes the entire game loop until the game is over.
func (e *localEngine) Run(ctx context.Context) (game.Seat, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.start),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.start)

	step := 1
	for !e.gm.Over() && step <= e.maxMoves {
		if err := ctx.Err(); err != nil {
			return -1, gameMetric, moveMetrics, err
		}

		seat := e.gm.Turn()
		move, searchMetric := e.agents[seat].FindMove(ctx, e.gm.State(), seat)
		if err := e.gm.Play(seat, move); err != nil {
			return -1, gameMetric, moveMetrics, fmt.Errorf("agent for seat %d failed at step %d: %w", seat, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(seat),
			Pass:         move.IsPass(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Int("seat", int(seat)).Stringer("move", move).Msg("move played")
		step++
	}

	if !e.gm.Over() {
		log.Warn().Msgf("stopped after %d moves without the game ending", e.maxMoves)
	}

	winner := e.gm.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.Scores = e.gm.Scores()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves, winner: %d, scores: %v", gameMetric.TotalMoves, winner, gameMetric.Scores)
	return winner, gameMetric, moveMetrics, nil
}

// Board returns the current board, for display.
func (e *localEngine) Board() *game.Board {
	return e.gm.State().Board
}
