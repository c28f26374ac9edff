package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSelfPlay(t *testing.T) {
	out, err := execute(t, "selfplay", "--size", "7", "--agent", "greedy", "--log-level", "error")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7+4+1, out)
	require.Contains(t, out, "player 0: ")
}

func TestFlagsOverrideConfig(t *testing.T) {
	_, err := execute(t, "selfplay", "--size", "5", "--agent", "greedy", "--depth", "3", "--nodes", "50", "--log-level", "error")

	require.NoError(t, err)
	require.Equal(t, 3, cfg.Depth)
	require.Equal(t, 50, cfg.NodeBudget)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestInvalidFlags(t *testing.T) {
	t.Run("unknown agent", func(t *testing.T) {
		_, err := execute(t, "selfplay", "--size", "5", "--agent", "oracle", "--log-level", "error")
		require.Error(t, err)
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := execute(t, "selfplay", "--depth", "-1")
		require.Error(t, err)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := execute(t, "experiment", "chess", "--log-level", "error")
		require.Error(t, err)
	})
}

func TestExperiment(t *testing.T) {
	out, err := execute(t, "experiment", "baseline", "--games", "1", "--parallel", "1", "--out", t.TempDir(), "--log-level", "error")

	require.NoError(t, err)
	require.Contains(t, out, "agent 1: ")
	require.Contains(t, out, "records written to ")
}
