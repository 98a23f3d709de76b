package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spaceship/metrics"
	"github.com/katalvlaran/spaceship/planner"
	"github.com/katalvlaran/spaceship/puzzle"
)

func newSolveCmd(a *app) *cobra.Command {
	var output, problem string
	cmd := &cobra.Command{
		Use:   "solve PUZZLE",
		Short: "Plan a tour visiting every target of a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := readTargets(args[0])
			if err != nil {
				return err
			}
			if problem == "" {
				problem = puzzle.ProblemName(args[0])
			}

			opts := planner.DefaultOptions()
			opts.Strategy = a.cfg.Strategy
			opts.Horizon = a.cfg.Horizon
			opts.Recover = a.cfg.Recover
			opts.Logger = a.log
			opts.OnSegment = a.metrics.ObserveSegment

			start := time.Now()
			tour, err := planner.Plan(targets, opts)
			if err != nil {
				a.metrics.ObserveError(metrics.OpPlan, err)
				return err
			}
			a.metrics.ObserveTour(tour, time.Since(start))

			a.log.Info("solved",
				slog.String("problem", problem),
				slog.Int("length", tour.Stats.Length),
				slog.Int("max_vx", tour.Stats.MaxVX),
				slog.Int("max_vy", tour.Stats.MaxVY),
				slog.Any("segment_steps", tour.Segments),
			)
			return writeLine(cmd.OutOrStdout(), output, puzzle.FormatSolution(problem, tour.Solution))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the solution to this file instead of stdout")
	cmd.Flags().StringVar(&problem, "problem", "", "problem name (default: puzzle file name)")
	return cmd
}
