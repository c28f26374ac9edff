package gamemaster

import (
	"errors"
	"fmt"

	"blokus/game"
	"blokus/utils"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not this player's turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrPassRejected = errors.New("cannot pass while a move is available")
)

// Update records one accepted move.
type Update struct {
	Step int
	Seat game.Seat
	Move game.Move
}

// GameMaster holds the authoritative state of one game and enforces the rules.
type GameMaster struct {
	state   *game.State
	turn    game.Turn
	history []Update
}

func NewGameMaster(setup Setup) (*GameMaster, error) {
	state, err := setup.newState()
	if err != nil {
		return nil, err
	}
	return &GameMaster{
		state: state,
		turn:  game.Turn{Seat: setup.Start},
	}, nil
}

// State returns a copy of the current state that callers may freely mutate.
func (gm *GameMaster) State() *game.State {
	return gm.state.Clone()
}

func (gm *GameMaster) Turn() game.Seat {
	return gm.turn.Seat
}

func (gm *GameMaster) Over() bool {
	return gm.turn.Over()
}

func (gm *GameMaster) History() []Update {
	return gm.history
}

// Play applies the move of seat after checking it against the legal moves.
// A pass is only accepted when the seat has nothing to place.
func (gm *GameMaster) Play(seat game.Seat, move game.Move) error {
	if gm.Over() {
		return ErrGameOver
	}
	if seat != gm.turn.Seat {
		return fmt.Errorf("%v played on %v's turn: %w", seat, gm.turn.Seat, ErrNotYourTurn)
	}

	legalMoves := gm.state.LegalMoves(seat)
	event := game.Played
	if move.IsPass() {
		if len(legalMoves) > 0 {
			return fmt.Errorf("%v has %d moves: %w", seat, len(legalMoves), ErrPassRejected)
		}
		move = game.PassMove
		event = game.Passed
	} else {
		if utils.FindIndex(legalMoves, move) < 0 {
			return fmt.Errorf("%v cannot play %v: %w", seat, move, ErrIllegalMove)
		}
		if _, err := gm.state.Play(seat, move); err != nil {
			return err
		}
	}

	gm.history = append(gm.history, Update{Step: len(gm.history) + 1, Seat: seat, Move: move})
	gm.turn = gm.turn.Advance(event)
	gm.state.Turn = gm.turn.Seat
	return nil
}

// Scores are the covered cells of every seat, bonus squares counting extra.
func (gm *GameMaster) Scores() [game.NumPlayers]float64 {
	return game.ScoreAll(Coverage.Evaluation(), gm.state)
}

// Winner is the seat with the highest score, or -1 on a tie for first place.
func (gm *GameMaster) Winner() game.Seat {
	scores := gm.Scores()
	winner, unique := utils.MaxIndex(scores[:])
	if !unique {
		return -1
	}
	return game.Seat(winner)
}
