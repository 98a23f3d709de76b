package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/metrics"
	"github.com/katalvlaran/spaceship/optimizer"
	"github.com/katalvlaran/spaceship/puzzle"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "optimize PUZZLE SOLUTION",
		Short: "Shorten an existing solution; prints nothing unless it improves",
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

			start := time.Now()
			table, err := axis.Build(a.cfg.Ceiling)
			if err != nil {
				return err
			}
			a.log.Debug("transition table built",
				slog.Int("ceiling", table.Ceiling()),
				slog.Int("entries", table.Len()),
				slog.Duration("elapsed", time.Since(start)),
			)

			res, err := optimizer.Optimize(targets, sol.Moves, table, optimizer.Options{Logger: a.log})
			if err != nil {
				a.metrics.ObserveError(metrics.OpOptimize, err)
				return err
			}
			a.metrics.ObserveOptimization(res, time.Since(start))
			if !res.Improved {
				a.log.Info("no improvement", slog.Int("length", len(sol.Moves)))
				return nil
			}

			problem := sol.Problem
			if problem == "" {
				problem = puzzle.ProblemName(args[0])
			}
			a.log.Info("optimized",
				slog.String("problem", problem),
				slog.Int("old_length", len(sol.Moves)),
				slog.Int("new_length", len(res.Solution)),
				slog.Int("saved", res.Saved),
				slog.Int("passes", res.Passes),
			)
			return writeLine(cmd.OutOrStdout(), output, puzzle.FormatSolution(problem, res.Solution))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the improved solution to this file instead of stdout")
	return cmd
}
