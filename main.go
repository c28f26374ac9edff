package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"blokus/experiments/metrics"
	"blokus/meta"

	"github.com/spf13/cobra"
)

var cfg meta.Config

type globalFlags struct {
	config     string
	logLevel   string
	depth      int
	timeout    time.Duration
	nodeBudget int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	defaults := meta.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blokus",
		Short: "Four-player polyomino placement bot",
		Long: `blokus chooses moves for a four-player polyomino placement game.

It plays one seat over a line protocol on stdin and stdout, runs local
self-play games against other bot programs, and runs experiments that
compare agent configurations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, flags)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flags.depth, "depth", defaults.Depth, "Search depth in plies")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", defaults.Timeout, "Time budget per move, 0 for none")
	rootCmd.PersistentFlags().IntVar(&flags.nodeBudget, "nodes", defaults.NodeBudget, "Node budget per move, 0 for none")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSelfPlayCmd())
	rootCmd.AddCommand(newExperimentCmd())

	return rootCmd
}

// loadConfig reads the config file, lets explicitly set flags override it and
// points logging at stderr. Stdout is reserved for moves.
func loadConfig(cmd *cobra.Command, flags *globalFlags) error {
	cfg = meta.DefaultConfig()
	if flags.config != "" {
		loaded, err := meta.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("depth") {
		cfg.Depth = flags.depth
	}
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if changed("nodes") {
		cfg.NodeBudget = flags.nodeBudget
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return meta.SetupLogging(cfg.LogLevel, os.Stderr)
}

func agentConfig(id int, kind string, seed uint64) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Kind:       kind,
		Depth:      cfg.Depth,
		Duration:   cfg.Timeout,
		NodeBudget: cfg.NodeBudget,
		Weights:    cfg.Weights,
		Seed:       seed,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
