package main

import (
	"os"

	"blokus/communication"
	"blokus/experiments"
	"blokus/player"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var kind string
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one seat over stdin and stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := experiments.NewAgent(agentConfig(0, kind, seed))
			if err != nil {
				return err
			}

			comm := communication.NewStdioCommunicator(os.Stdin, os.Stdout)
			return player.NewPlayer(comm, a).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&kind, "agent", experiments.KindMinimax, "Agent: minimax, greedy, random")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the random agent")

	return cmd
}
