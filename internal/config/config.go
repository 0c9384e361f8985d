// SPDX-License-Identifier: MIT

// Package config resolves chemsp settings from defaults, an optional YAML
// file, CHEMSP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/chemsp/export"
	"github.com/katalvlaran/chemsp/graph"
	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/kernel"
	"github.com/katalvlaran/chemsp/matrix"
	"github.com/katalvlaran/chemsp/spectral"
)

// EnvPrefix prefixes every environment variable read by NewViper.
const EnvPrefix = "CHEMSP"

// Keys understood by Load. Flags bound to viper must use the same names.
const (
	KeyKernel      = "kernel"
	KeyLengthScale = "length-scale"
	KeyOperator    = "operator"
	KeyEpsilon     = "epsilon"
	KeyMaxSweeps   = "max-sweeps"
	KeyWorkers     = "workers"
	KeyFormat      = "format"
	KeyOutDir      = "out-dir"
	KeyLowPassK    = "low-pass-k"
	KeyThreshold   = "threshold"
	KeyLogLevel    = "log-level"
	KeyLogFile     = "log-file"
)

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings for a run.
type Config struct {
	Kernel      string
	LengthScale float64
	Operator    string
	Epsilon     float64
	MaxSweeps   int
	Workers     int
	Format      string
	OutDir      string
	LowPassK    int
	Threshold   float64
	LogLevel    string
	LogFile     string
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Kernel:      kernel.KindRBF.String(),
		LengthScale: 1,
		Operator:    gso.OperatorAdjacency.String(),
		Epsilon:     matrix.DefaultEpsilon,
		MaxSweeps:   matrix.DefaultMaxSweeps,
		Workers:     4,
		Format:      string(export.FormatJSON),
		LowPassK:    1,
		Threshold:   0.5,
		LogLevel:    "info",
	}
}

// NewViper returns a viper instance seeded with Defaults and the CHEMSP_
// environment. When cfgFile is not empty it is read as YAML.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyKernel, d.Kernel)
	v.SetDefault(KeyLengthScale, d.LengthScale)
	v.SetDefault(KeyOperator, d.Operator)
	v.SetDefault(KeyEpsilon, d.Epsilon)
	v.SetDefault(KeyMaxSweeps, d.MaxSweeps)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyOutDir, d.OutDir)
	v.SetDefault(KeyLowPassK, d.LowPassK)
	v.SetDefault(KeyThreshold, d.Threshold)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	return v, nil
}

// Load reads a Config out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Kernel:      v.GetString(KeyKernel),
		LengthScale: v.GetFloat64(KeyLengthScale),
		Operator:    v.GetString(KeyOperator),
		Epsilon:     v.GetFloat64(KeyEpsilon),
		MaxSweeps:   v.GetInt(KeyMaxSweeps),
		Workers:     v.GetInt(KeyWorkers),
		Format:      v.GetString(KeyFormat),
		OutDir:      v.GetString(KeyOutDir),
		LowPassK:    v.GetInt(KeyLowPassK),
		Threshold:   v.GetFloat64(KeyThreshold),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFile:     v.GetString(KeyLogFile),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if _, err := c.Metric(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyKernel, err)
	}
	if _, err := c.OperatorKind(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyOperator, err)
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyFormat, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}
	switch {
	case !(c.Epsilon >= 0) || math.IsInf(c.Epsilon, 0):
		return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalid, KeyEpsilon, c.Epsilon)
	case c.MaxSweeps <= 0:
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalid, KeyMaxSweeps, c.MaxSweeps)
	case c.Workers <= 0:
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalid, KeyWorkers, c.Workers)
	case c.LowPassK < 0:
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalid, KeyLowPassK, c.LowPassK)
	case math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0):
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, KeyThreshold, c.Threshold)
	}

	return nil
}

// Metric builds the configured kernel.
func (c Config) Metric() (gso.Metric, error) {
	k, err := kernel.Parse(c.Kernel)
	if err != nil {
		return nil, err
	}

	return kernel.New(k, c.LengthScale)
}

// OperatorKind parses Operator.
func (c Config) OperatorKind() (gso.Operator, error) { return gso.ParseOperator(c.Operator) }

// OutputFormat parses Format.
func (c Config) OutputFormat() (export.Format, error) { return export.ParseFormat(c.Format) }

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// GraphOptions converts the thresholding settings; c must be valid.
func (c Config) GraphOptions() []graph.Option {
	return []graph.Option{graph.WithThreshold(c.Threshold)}
}

// SpectralOptions converts the solver settings; c must be valid.
func (c Config) SpectralOptions() []spectral.Option {
	op, _ := c.OperatorKind()

	return []spectral.Option{
		spectral.WithOperator(op),
		spectral.WithEpsilon(c.Epsilon),
		spectral.WithMaxSweeps(c.MaxSweeps),
		spectral.WithWorkers(c.Workers),
	}
}
