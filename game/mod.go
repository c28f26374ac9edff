package game

import "fmt"

const NumPlayers = 4

// Seat identifies one of the four players. Seat values double as the cell
// values that player's pieces occupy.
type Seat int

func (s Seat) Valid() bool {
	return s >= 0 && s < NumPlayers
}

func (s Seat) Next() Seat {
	return (s + 1) % NumPlayers
}

func (s Seat) Cell() Cell {
	return Cell(s)
}

func (s Seat) String() string {
	return fmt.Sprintf("player %d", int(s))
}

type TurnEvent int

const (
	Played TurnEvent = iota
	Passed
)

// Turn is the turn-order state machine. The seat advances on both a played
// move and a pass; the game ends once every seat has passed in a row.
type Turn struct {
	Seat   Seat
	Passes int
}

func (t Turn) Advance(event TurnEvent) Turn {
	switch event {
	case Played:
		return Turn{Seat: t.Seat.Next()}
	case Passed:
		return Turn{Seat: t.Seat.Next(), Passes: t.Passes + 1}
	default:
		panic(fmt.Sprintf("unexpected turn event %d", event))
	}
}

func (t Turn) Over() bool {
	return t.Passes >= NumPlayers
}

// Evaluate scores how favorable the state is for player. Higher is better.
type Evaluate func(s *State, player Seat) float64
