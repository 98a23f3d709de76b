package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/metrics"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify PUZZLE SOLUTION",
		Short: "Check that a solution visits every target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := readTargets(args[0])
			if err != nil {
				return err
			}
			sol, err := readSolution(args[1])
			if err != nil {
				return err
			}
			if err := kinematics.Verify(targets, sol.Moves); err != nil {
				a.metrics.ObserveError(metrics.OpVerify, err)
				return err
			}

			states, err := kinematics.Trace(kinematics.ShipState{}, sol.Moves)
			if err != nil {
				return err
			}
			visits, _ := kinematics.VisitIndices(targets, states)
			st := kinematics.Summarize(states)
			gaps := make([]int, 0, len(visits))
			prev := 0
			for _, v := range visits {
				gaps = append(gaps, v.Index-prev)
				prev = v.Index
			}
			a.log.Info("verified",
				slog.Int("length", st.Length),
				slog.Int("max_vx", st.MaxVX),
				slog.Int("max_vy", st.MaxVY),
				slog.Any("steps_between_targets", gaps),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %d targets in %d steps\n", len(visits), st.Length)
			return err
		},
	}
}
