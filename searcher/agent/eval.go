package agent

import (
	"context"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searcher's best move.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(ctx context.Context, state *game.State, player game.Seat) (game.Move, metrics.SearchMetric) {
	result, metric := a.minimax.Search(ctx, state, player)
	return result.Move, metric
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent that plays the first legal move, which is
// always one of the largest pieces still in hand.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(_ context.Context, state *game.State, player game.Seat) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.PassMove, metrics.SearchMetric{}
	}
	return moves[0], metrics.SearchMetric{}
}
