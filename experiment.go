package main

import (
	"fmt"
	"sort"

	"blokus/experiments"

	"github.com/spf13/cobra"
)

func newExperimentCmd() *cobra.Command {
	var (
		depths   []int
		games    int
		parallel int
		outDir   string
	)

	cmd := &cobra.Command{
		Use:       "experiment <depth|throughput|baseline>",
		Short:     "Run an experiment and write its records as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"depth", "throughput", "baseline"},
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment := cfg.Experiment
			if cmd.Flags().Changed("games") {
				experiment.Games = games
			}
			if cmd.Flags().Changed("parallel") {
				experiment.Parallel = parallel
			}
			if cmd.Flags().Changed("out") {
				experiment.OutDir = outDir
			}

			var config experiments.Config
			switch args[0] {
			case "depth":
				config = experiments.DepthExperiment(depths, cfg.Weights, experiment)
			case "throughput":
				config = experiments.ThroughputExperiment(depths, cfg.Timeout, experiment)
			case "baseline":
				config = experiments.BaselineExperiment(experiment.Seed, experiment)
			default:
				return fmt.Errorf("unknown experiment %q", args[0])
			}

			result, err := experiments.Run(cmd.Context(), config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ids := make([]int, 0, len(config.Configs))
			for _, ac := range config.Configs {
				ids = append(ids, ac.ID)
			}
			sort.Ints(ids)
			for _, id := range ids {
				fmt.Fprintf(out, "agent %d: %d wins\n", id, result.Wins[id])
			}
			if result.Dir != "" {
				fmt.Fprintf(out, "records written to %s\n", result.Dir)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&depths, "depths", []int{1, 2}, "Search depths to compare")
	cmd.Flags().IntVar(&games, "games", 0, "Games per matchup, overrides the config")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Games played at once, overrides the config")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory, overrides the config")

	return cmd
}
