package engine

import (
	"context"

	"blokus/experiments/metrics"
	"blokus/game"
)

type Engine interface {
	// Run plays a game till every seat passes in a row or a max number of moves is reached
	Run(ctx context.Context) (winner game.Seat, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
	Board() *game.Board
}
