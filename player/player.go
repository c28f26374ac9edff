package player

import (
	"context"
	"errors"
	"io"

	"blokus/communication"
	"blokus/game"
	"blokus/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Controller interface {
	Run(ctx context.Context) error
}

// Player answers move requests for one seat. Its view of the game is rebuilt
// from every board update and never carried across updates.
type Player struct {
	Seat         game.Seat
	Communicator communication.Communicator
	Agent        agent.Agent
	state        *game.State
	seated       bool
}

// NewPlayer creates a new Player instance.
func NewPlayer(comm communication.Communicator, a agent.Agent) *Player {
	return &Player{
		Communicator: comm,
		Agent:        a,
	}
}

// Run handles updates until the input is closed or the context is done.
func (p *Player) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		update, err := p.Communicator.Receive()
		if errors.Is(err, io.EOF) {
			log.Info().Msg("input closed")
			return nil
		}
		if errors.Is(err, communication.ErrMalformed) {
			log.Error().Err(err).Msg("dropping update")
			if err := p.Communicator.SendDebug(err.Error()); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if err := p.Handle(ctx, update); err != nil {
			return err
		}
	}
}

// Handle applies one update and answers it when a move is requested.
func (p *Player) Handle(ctx context.Context, update communication.Update) error {
	if update.Error != nil {
		log.Warn().Str("error", *update.Error).Msg("server reported an error")
		if err := p.Communicator.SendDebug("Error: " + *update.Error); err != nil {
			return err
		}
	}

	if update.Number != nil {
		p.Seat = *update.Number
		p.seated = true
		log.Info().Int("seat", int(p.Seat)).Msg("seated")
	}

	if update.HasBoard() {
		p.state = update.State()
		log.Debug().Int("turn", int(p.state.Turn)).Int("size", p.state.Board.Size()).Msg("board updated")
	}

	if !update.Move {
		return nil
	}
	return p.Communicator.SendMove(p.decide(ctx))
}

func (p *Player) decide(ctx context.Context) game.Move {
	if p.state == nil {
		log.Warn().Msg("move requested before any board was received")
		if err := p.Communicator.SendDebug("no board received, passing"); err != nil {
			log.Error().Err(err).Msg("failed to send debug line")
		}
		return game.PassMove
	}
	if !p.seated {
		log.Warn().Int("seat", int(p.Seat)).Msg("move requested before a player number was received")
	}

	move, metric := p.Agent.FindMove(ctx, p.state, p.Seat)
	log.Info().
		Stringer("move", move).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Bool("exhausted", metric.Exhausted).
		Msg("move chosen")
	return move
}
