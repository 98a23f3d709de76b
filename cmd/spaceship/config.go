package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/planner"
	"github.com/katalvlaran/spaceship/search"
)

// Configuration keys, shared by flags, environment and config files.
const (
	keyConfig      = "config"
	keyHorizon     = "horizon"
	keyCeiling     = "ceiling"
	keyStrategy    = "strategy"
	keyRecover     = "recover"
	keyLogLevel    = "log-level"
	keyMetricsFile = "metrics-file"
)

const envPrefix = "SPACESHIP"

var errConfig = errors.New("spaceship: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Horizon     int
	Ceiling     int
	Strategy    planner.Strategy
	Recover     bool
	LogLevel    slog.Level
	MetricsFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyHorizon, search.DefaultHorizon)
	v.SetDefault(keyCeiling, axis.DefaultCeiling)
	v.SetDefault(keyStrategy, planner.StrategySearch.String())
	v.SetDefault(keyRecover, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyMetricsFile, "")
}

// loadConfig reads the optional config file and environment into v and
// validates the result.
func loadConfig(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", errConfig, path, err)
		}
	}

	cfg := Config{
		Horizon:     v.GetInt(keyHorizon),
		Ceiling:     v.GetInt(keyCeiling),
		Recover:     v.GetBool(keyRecover),
		MetricsFile: v.GetString(keyMetricsFile),
	}
	if cfg.Horizon <= 0 {
		return Config{}, fmt.Errorf("%w: horizon must be positive (%d)", errConfig, cfg.Horizon)
	}
	if cfg.Ceiling < 0 {
		return Config{}, fmt.Errorf("%w: ceiling must be non-negative (%d)", errConfig, cfg.Ceiling)
	}
	strategy, err := planner.ParseStrategy(v.GetString(keyStrategy))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg.Strategy = strategy
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errConfig, err)
	}
	return cfg, nil
}
