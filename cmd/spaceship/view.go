package main

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/render"
)

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view PUZZLE SOLUTION",
		Short: "Draw the trajectory of a solution in the terminal (q to quit)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			targets, err := readTargets(args[0])
			if err != nil {
				return err
			}
			sol, err := readSolution(args[1])
			if err != nil {
				return err
			}
			states, err := kinematics.Trace(kinematics.ShipState{}, sol.Moves)
			if err != nil {
				return err
			}

			screen, err := newScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			sum := render.Run(screen, targets, states)
			screen.Fini()

			a.log.Info("viewed",
				slog.Int("steps", sum.Steps),
				slog.Int("visited", sum.Visited),
				slog.Int("missing", sum.Missing),
			)
			return nil
		},
	}
}
