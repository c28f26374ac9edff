package agent

import (
	"context"

	"blokus/experiments/metrics"
	"blokus/game"
)

type Agent interface {
	// FindMove returns the move for player, game.PassMove if none is legal, and search metrics (if collected)
	FindMove(ctx context.Context, state *game.State, player game.Seat) (game.Move, metrics.SearchMetric)
}
