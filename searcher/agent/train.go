package agent

import (
	"context"
	"sync"

	"blokus/experiments/metrics"
	"blokus/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
// Agents built with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{random: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, state *game.State, player game.Seat) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.PassMove, metrics.SearchMetric{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.random.Intn(len(moves))], metrics.SearchMetric{}
}
