package searcher

import "blokus/game"

const DefaultDepth = 2

// Result is the outcome of a search: the chosen move, or game.PassMove when
// nothing was placed, and the projected score of every seat.
type Result struct {
	Move   game.Move
	Scores [game.NumPlayers]float64
}

func (r Result) IsPass() bool {
	return r.Move.IsPass()
}
