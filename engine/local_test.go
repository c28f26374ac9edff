package engine

import (
	"context"
	"io"
	"testing"

	"blokus/communication"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/player"
	"blokus/searcher"
	"blokus/searcher/agent"

	"github.com/stretchr/testify/require"
)

type fixedAgent struct {
	move game.Move
}

func (a fixedAgent) FindMove(context.Context, *game.State, game.Seat) (game.Move, metrics.SearchMetric) {
	return a.move, metrics.SearchMetric{}
}

func greedyAgents() [game.NumPlayers]agent.Agent {
	var agents [game.NumPlayers]agent.Agent
	for i := range agents {
		agents[i] = agent.NewGreedyAgent()
	}
	return agents
}

// pipePlayer runs a protocol player in the background and returns a remote agent talking to it.
func pipePlayer(t *testing.T, a agent.Agent) agent.Agent {
	t.Helper()
	toPlayerR, toPlayerW := io.Pipe()
	fromPlayerR, fromPlayerW := io.Pipe()
	p := player.NewPlayer(communication.NewStdioCommunicator(toPlayerR, fromPlayerW), a)

	done := make(chan error, 1)
	go func() {
		done <- p.Run(context.Background())
		fromPlayerW.Close()
	}()
	t.Cleanup(func() {
		toPlayerW.Close()
		require.NoError(t, <-done)
	})
	return NewRemoteAgent("pipe", toPlayerW, fromPlayerR)
}

func TestLocalEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("playing a game to the end", func(t *testing.T) {
		e, err := LocalEngine(gamemaster.StandardSetup(7), greedyAgents())
		require.NoError(t, err)

		winner, gameMetric, moveMetrics, err := e.Run(ctx)
		require.NoError(t, err)

		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.GreaterOrEqual(t, int(winner), -1)
		require.Equal(t, int(winner), gameMetric.Winner)
		last := moveMetrics[len(moveMetrics)-game.NumPlayers:]
		for _, m := range last {
			require.True(t, m.Pass, "Game should end on a round of passes")
		}
		require.Greater(t, gameMetric.Scores[0], 0.0)
		require.Equal(t, int(gameMetric.Scores[0]+gameMetric.Scores[1]+gameMetric.Scores[2]+gameMetric.Scores[3]),
			49-e.Board().Count(game.Empty), "Without bonus squares scores should add up to covered cells")
	})

	t.Run("collecting search metrics", func(t *testing.T) {
		agents := greedyAgents()
		agents[1] = agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()))
		e, err := LocalEngine(gamemaster.StandardSetup(5), agents)
		require.NoError(t, err)

		_, _, moveMetrics, err := e.Run(ctx)
		require.NoError(t, err)

		require.Equal(t, 1, moveMetrics[1].Player)
		require.Greater(t, moveMetrics[1].Nodes, 1)
	})

	t.Run("failing on an illegal move", func(t *testing.T) {
		agents := greedyAgents()
		agents[0] = fixedAgent{move: game.Move{Piece: 0, Rotation: 0, X: 3, Y: 3}}
		e, err := LocalEngine(gamemaster.StandardSetup(7), agents)
		require.NoError(t, err)

		_, _, _, err = e.Run(ctx)
		require.ErrorIs(t, err, gamemaster.ErrIllegalMove)
	})

	t.Run("requiring an agent per seat", func(t *testing.T) {
		agents := greedyAgents()
		agents[3] = nil

		_, err := LocalEngine(gamemaster.StandardSetup(7), agents)
		require.Error(t, err)
	})
}

func TestRemoteAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("translating piece indices over the wire", func(t *testing.T) {
		state := game.NewStandardState(8, nil)
		_, err := state.Play(0, game.Move{Piece: 0, Rotation: 0, X: 0, Y: 0})
		require.NoError(t, err)
		remote := pipePlayer(t, agent.NewGreedyAgent())

		want, _ := agent.NewGreedyAgent().FindMove(ctx, state, 0)
		got, _ := remote.FindMove(ctx, state, 0)

		require.Equal(t, want, got)
		require.Equal(t, 9, got.Piece, "Largest remaining piece should map back past the placed monomino")
	})

	t.Run("playing a whole game over the protocol", func(t *testing.T) {
		agents := greedyAgents()
		agents[2] = pipePlayer(t, agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1))))
		e, err := LocalEngine(gamemaster.StandardSetup(6), agents)
		require.NoError(t, err)

		_, gameMetric, _, err := e.Run(ctx)
		require.NoError(t, err)
		require.Greater(t, gameMetric.Scores[2], 0.0)
	})
}
