package player

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"blokus/communication"
	"blokus/searcher"
	"blokus/searcher/agent"

	"github.com/stretchr/testify/require"
)

const monoBlocks = `[[[{"x": 0, "y": 0}]], [[{"x": 0, "y": 0}]], [[{"x": 0, "y": 0}]], [[{"x": 0, "y": 0}]]]`

func emptyGrid(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "[" + strings.TrimSuffix(strings.Repeat("-1, ", n), ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func boardLine(n, turn int, move bool) string {
	flag := 0
	if move {
		flag = 1
	}
	return fmt.Sprintf(`{"board": {"dimension": %d, "grid": %s, "bonus_squares": []}, "turn": %d, "blocks": %s, "move": %d}`,
		n, emptyGrid(n), turn, monoBlocks, flag)
}

func run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	comm := communication.NewStdioCommunicator(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	p := NewPlayer(comm, agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1))))

	require.NoError(t, p.Run(context.Background()))
	return out.String()
}

func TestPlayer(t *testing.T) {
	t.Run("answering a move request from its corner", func(t *testing.T) {
		out := run(t, `{"number": 1}`, boardLine(5, 1, true))

		require.Equal(t, "0 0 4 0\n", out)
	})

	t.Run("staying silent without a move request", func(t *testing.T) {
		out := run(t, `{"number": 0}`, boardLine(5, 2, false))

		require.Empty(t, out)
	})

	t.Run("echoing server errors as debug lines", func(t *testing.T) {
		out := run(t, `{"error": "invalid move"}`)

		require.Equal(t, "DEBUG Error: invalid move\n", out)
	})

	t.Run("passing before any board", func(t *testing.T) {
		out := run(t, `{"number": 2, "move": 1}`)

		require.Equal(t, "DEBUG no board received, passing\n-1 -1 -1 -1\n", out)
	})

	t.Run("reporting malformed lines and carrying on", func(t *testing.T) {
		out := run(t, `{"number": 0}`, `{"board": {}}`, boardLine(5, 0, true))

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		require.True(t, strings.HasPrefix(lines[0], "DEBUG "), "Malformed update should produce a debug line")
		require.Equal(t, "0 0 0 0", lines[1])
	})

	t.Run("passing when nothing fits", func(t *testing.T) {
		grid := strings.Replace(emptyGrid(3), "-1", "-2", 1)
		line := `{"board": {"dimension": 3, "grid": ` + grid + `, "bonus_squares": []}, "turn": 0, "blocks": ` + monoBlocks + `, "move": 1}`

		out := run(t, `{"number": 0}`, line)

		require.Equal(t, "-1 -1 -1 -1\n", out)
	})

	t.Run("stopping on a done context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		comm := communication.NewStdioCommunicator(strings.NewReader(`{"number": 0}`), &bytes.Buffer{})

		err := NewPlayer(comm, agent.NewGreedyAgent()).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
