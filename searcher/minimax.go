package searcher

import (
	"context"
	"fmt"
	"time"

	"blokus/experiments/metrics"
	"blokus/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-bounded search in which every seat maximizes its own
// projected score. A Minimax runs one search at a time.
type Minimax struct {
	depth      int
	duration   time.Duration
	nodeBudget int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithNodeBudget(nodes int) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeBudget = nodes
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return WithEvaluationFn(weights.Evaluation())
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateScores,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search picks the move for player that maximizes player's score after the
// configured number of plies. The state is mutated while searching and is
// restored before Search returns. When the context is done, the duration
// elapses or the node budget is spent, the best move found so far is returned.
func (m *Minimax) Search(ctx context.Context, state *game.State, player game.Seat) (Result, metrics.SearchMetric) {
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	m.metrics.Start(m.depth, m.nodeBudget, m.duration)
	s := &search{
		ctx:      ctx,
		state:    state,
		evaluate: m.evaluate,
		metrics:  m.metrics,
		budget:   m.nodeBudget,
		buffers:  make([][]game.Move, m.depth+1),
	}
	result := s.minimax(m.depth, player)
	metric := m.metrics.Complete()

	log.Debug().
		Int("player", int(player)).
		Int("depth", m.depth).
		Int("nodes", s.nodes).
		Bool("exhausted", s.exhausted).
		Stringer("move", result.Move).
		Float64("score", result.Scores[player]).
		Msg("search complete")
	return result, metric
}

type search struct {
	ctx       context.Context
	state     *game.State
	evaluate  game.Evaluate
	metrics   metrics.Collector
	budget    int
	nodes     int
	exhausted bool
	buffers   [][]game.Move // One move list per remaining depth
}

func (s *search) outOfBudget() bool {
	if s.exhausted {
		return true
	}
	if (s.budget > 0 && s.nodes >= s.budget) || s.ctx.Err() != nil {
		s.exhausted = true
		s.metrics.SetExhausted()
	}
	return s.exhausted
}

func (s *search) minimax(depth int, player game.Seat) Result {
	s.nodes++
	s.metrics.AddNode()

	// The root always expands so that a legal move is returned whenever one exists
	if depth == 0 || (s.nodes > 1 && s.outOfBudget()) {
		s.metrics.AddLeaf()
		return Result{Move: game.PassMove, Scores: game.ScoreAll(s.evaluate, s.state)}
	}

	moves := game.LegalMovesInto(s.buffers[depth], s.state.Board, player, s.state.Inventories[player])
	s.buffers[depth] = moves
	if len(moves) == 0 {
		s.metrics.AddPass()
		child := s.minimax(depth-1, player.Next())
		return Result{Move: game.PassMove, Scores: child.Scores}
	}

	var best Result
	for i, move := range moves {
		if i > 0 && s.outOfBudget() {
			break
		}
		child := s.explore(depth, player, move)
		if i == 0 || child.Scores[player] > best.Scores[player] {
			best = Result{Move: move, Scores: child.Scores}
		}
	}
	return best
}

func (s *search) explore(depth int, player game.Seat, move game.Move) Result {
	placement, err := s.state.Play(player, move)
	if err != nil {
		panic(fmt.Sprintf("enumerated move is not playable: %v", err))
	}
	defer placement.Rollback()

	return s.minimax(depth-1, player.Next())
}
