package gamemaster

import (
	"fmt"

	"blokus/game"

	"golang.org/x/exp/rand"
)

// Setup describes the starting position of a game.
type Setup struct {
	Size    int
	Craters []game.Point
	Bonus   []game.Point
	Pieces  []game.Piece
	Start   game.Seat
}

// StandardSetup is an empty board where every player holds the 21 standard pieces.
func StandardSetup(n int) Setup {
	return Setup{Size: n, Pieces: game.StandardPieces()}
}

// RandomSetup scatters craters and bonus squares over the board. The starting
// corners are never covered. The same seed always gives the same layout.
func RandomSetup(n, craters, bonus int, seed uint64) Setup {
	setup := StandardSetup(n)
	random := rand.New(rand.NewSource(seed))

	taken := make(map[game.Point]bool)
	for p := game.Seat(0); p < game.NumPlayers; p++ {
		taken[game.StartingCorner(p, n)] = true
	}
	free := n*n - len(taken)
	pick := func() game.Point {
		for {
			point := game.Point{X: random.Intn(n), Y: random.Intn(n)}
			if !taken[point] {
				taken[point] = true
				free--
				return point
			}
		}
	}

	for i := 0; i < craters && free > 0; i++ {
		setup.Craters = append(setup.Craters, pick())
	}
	for i := 0; i < bonus && free > 0; i++ {
		setup.Bonus = append(setup.Bonus, pick())
	}
	setup.Start = game.Seat(random.Intn(game.NumPlayers))
	return setup
}

func (s Setup) newState() (*game.State, error) {
	board := game.NewBoard(s.Size)
	for _, p := range s.Craters {
		if err := board.Set(p, game.Crater); err != nil {
			return nil, fmt.Errorf("cannot place crater: %w", err)
		}
	}
	for _, p := range s.Bonus {
		if !board.InBounds(p) {
			return nil, fmt.Errorf("cannot place bonus square %v: %w", p, game.ErrOutOfBounds)
		}
	}

	var inventories [game.NumPlayers]*game.Inventory
	for i := range inventories {
		inventories[i] = game.NewInventory(s.Pieces)
	}
	return game.NewState(board, inventories, s.Bonus, s.Start), nil
}

// Coverage scores a finished game by covered cells, bonus squares counting extra.
var Coverage = game.Weights{Coverage: 1, BonusMultiplier: game.DefaultWeights().BonusMultiplier}
