package main

import (
	"fmt"

	"blokus/engine"
	"blokus/experiments"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/meta"
	"blokus/searcher/agent"

	"github.com/spf13/cobra"
)

func newSelfPlayCmd() *cobra.Command {
	var (
		bots    []string
		kind    string
		size    int
		craters int
		bonus   int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play a local game and print the final board",
		Long: `Play a local game. Each --bot program takes the next seat starting from
seat 0 and speaks the line protocol on its stdin and stdout. The remaining
seats are played in process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(bots) > game.NumPlayers {
				return fmt.Errorf("at most %d bots, got %d", game.NumPlayers, len(bots))
			}

			var agents [game.NumPlayers]agent.Agent
			for seat, path := range bots {
				a, stop, err := engine.StartProcess(cmd.Context(), path)
				if err != nil {
					return err
				}
				defer stop()
				agents[seat] = a
			}
			for seat := len(bots); seat < game.NumPlayers; seat++ {
				a, err := experiments.NewAgent(agentConfig(seat, kind, seed+uint64(seat)))
				if err != nil {
					return err
				}
				agents[seat] = a
			}

			e, err := engine.LocalEngine(gamemaster.RandomSetup(size, craters, bonus, seed), agents)
			if err != nil {
				return err
			}
			winner, gameMetric, _, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, e.Board())
			for seat, score := range gameMetric.Scores {
				fmt.Fprintf(out, "player %d: %g\n", seat, score)
			}
			if winner < 0 {
				fmt.Fprintln(out, "tie")
			} else {
				fmt.Fprintf(out, "winner: player %d\n", winner)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&bots, "bot", nil, "Bot program for the next seat, repeatable")
	cmd.Flags().StringVar(&kind, "agent", experiments.KindMinimax, "Agent for the remaining seats: minimax, greedy, random")
	cmd.Flags().IntVar(&size, "size", meta.BOARD_SIZE, "Board size")
	cmd.Flags().IntVar(&craters, "craters", 0, "Number of craters")
	cmd.Flags().IntVar(&bonus, "bonus", 0, "Number of bonus squares")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the board layout and random agents")

	return cmd
}
