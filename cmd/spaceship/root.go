package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/metrics"
	"github.com/katalvlaran/spaceship/puzzle"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	root := &cobra.Command{
		Use:           "spaceship",
		Short:         "Plan thrust sequences that fly a spaceship over every target cell",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flush()
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, toml or json)")
	pf.Int(keyHorizon, a.v.GetInt(keyHorizon), "maximum search rounds per segment")
	pf.Int(keyCeiling, a.v.GetInt(keyCeiling), "step ceiling of the axis transition table")
	pf.String(keyStrategy, a.v.GetString(keyStrategy), "planning strategy: search or sequential")
	pf.Bool(keyRecover, a.v.GetBool(keyRecover), "fly rest-to-rest when a segment search exceeds the horizon")
	pf.String(keyLogLevel, a.v.GetString(keyLogLevel), "log level: debug, info, warn or error")
	pf.String(keyMetricsFile, "", "write Prometheus metrics to this file on exit")
	for _, key := range []string{keyConfig, keyHorizon, keyCeiling, keyStrategy, keyRecover, keyLogLevel, keyMetricsFile} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		newSolveCmd(a),
		newOptimizeCmd(a),
		newVerifyCmd(a),
		newViewCmd(a),
	)
	return root
}

// setup resolves configuration and builds the logger and metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	a.metrics = metrics.New()
	a.log.Debug("configuration loaded",
		slog.Int(keyHorizon, cfg.Horizon),
		slog.Int(keyCeiling, cfg.Ceiling),
		slog.String(keyStrategy, cfg.Strategy.String()),
		slog.Bool(keyRecover, cfg.Recover),
		slog.String(keyConfig, a.v.ConfigFileUsed()),
	)
	return nil
}

// flush writes the metrics file when one is configured.
func (a *app) flush() error {
	if a.cfg.MetricsFile == "" || a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))
	return nil
}

func readTargets(path string) ([]kinematics.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	targets, err := puzzle.ParseTargets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return targets, nil
}

func readSolution(path string) (puzzle.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Solution{}, err
	}
	defer f.Close()

	sol, err := puzzle.ParseSolution(f)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("%s: %w", path, err)
	}
	return sol, nil
}

// writeLine writes line to path, or to w when path is empty.
func writeLine(w io.Writer, path, line string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, line)
		return err
	}
	return os.WriteFile(path, []byte(line+"\n"), 0o644)
}
