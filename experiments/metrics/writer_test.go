package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"blokus/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		configs := []AgentConfig{{ID: 1, Kind: "minimax", Depth: 2, Duration: time.Second, Weights: game.DefaultWeights(), Seed: 9}}

		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "minimax", "2", "1s", "0", "1", "3", "0.5", "9"}, rows[1])
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:     1,
			Agents: [game.NumPlayers]int{1, 2, 2, 2},
			GameMetric: GameMetric{
				StartingPlayer: 3,
				Winner:         -1,
				Scores:         [4]float64{10, 12, 12, 3.5},
				StartTime:      start,
				EndTime:        start.Add(time.Minute),
				Duration:       time.Minute,
				TotalMoves:     40,
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "2", "2", "3", "-1", "10", "12", "12", "3.5",
			"2024-01-02T03:04:05Z", "2024-01-02T03:05:05Z", "1m0s", "40"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 3, SearchMetric: SearchMetric{Depth: 2, Nodes: 120, Leaves: 100, Exhausted: true}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 0, Pass: true}},
		}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "3", "false", "2", "0s", "120", "100", "0", "true"}, rows[1])
		require.Equal(t, "true", rows[2][3])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 100, time.Second)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddPass()
		c.SetExhausted()

		metric := c.Complete()

		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 100, metric.NodeBudget)
		require.Equal(t, time.Second, metric.TimeBudget)
		require.Equal(t, 2, metric.Nodes)
		require.Equal(t, 1, metric.Leaves)
		require.Equal(t, 1, metric.Passes)
		require.True(t, metric.Exhausted)
	})

	t.Run("starting over resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 0, 0)
		c.AddNode()
		c.SetExhausted()
		c.Start(1, 0, 0)

		metric := c.Complete()
		require.Zero(t, metric.Nodes)
		require.False(t, metric.Exhausted)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, 0, 0)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
