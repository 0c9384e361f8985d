// SPDX-License-Identifier: MIT

// Package dataset loads molecular representation sets and node signals
// from CSV, JSON and YAML files.
//
// JSON and YAML documents share one layout:
//
//	ids:      [ethanol, methanol, ...]   # optional, one per molecule
//	features: [[0.1, 0.1, 0.1], ...]     # N×M representation matrix
//	signals:                             # optional, each of length N
//	  logp: [-0.31, -0.77, ...]
//
// CSV files carry one molecule per row under a header. An "id" column
// becomes Ids, columns listed as signal columns become Signals and every
// other column is a feature.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/chemsp/gso"
)

var (
	// ErrUnknownFormat is returned for file extensions Load does not handle.
	ErrUnknownFormat = errors.New("dataset: unknown file format")
	// ErrSignalLength is returned when a signal is not one value per molecule.
	ErrSignalLength = errors.New("dataset: signal length differs from molecule count")
	// ErrIDCount is returned when ids are present but not one per molecule.
	ErrIDCount = errors.New("dataset: id count differs from molecule count")
	// ErrNoSignal is returned by Signal for an unknown name.
	ErrNoSignal = errors.New("dataset: no such signal")
	// ErrMalformed is returned for unparsable cells and missing columns.
	ErrMalformed = errors.New("dataset: malformed input")
)

// Format identifies an on-disk encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Dataset is a representation set with optional molecule ids and named signals.
type Dataset struct {
	IDs      []string             `json:"ids,omitempty" yaml:"ids,omitempty"`
	Features [][]float64          `json:"features" yaml:"features"`
	Signals  map[string][]float64 `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// Len returns the number of molecules.
func (d *Dataset) Len() int { return len(d.Features) }

// Representations coerces Features into a gso representation set.
func (d *Dataset) Representations() (*gso.Representations, error) {
	return gso.Coerce(d.Features)
}

// SignalNames returns the signal names in lexical order.
func (d *Dataset) SignalNames() []string {
	names := make([]string, 0, len(d.Signals))
	for name := range d.Signals {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Signal returns the named signal.
func (d *Dataset) Signal(name string) ([]float64, error) {
	s, ok := d.Signals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNoSignal, name, d.SignalNames())
	}

	return s, nil
}

// Validate checks that features form a valid representation set and that
// ids and signals are aligned with it.
func (d *Dataset) Validate() error {
	if _, err := d.Representations(); err != nil {
		return err
	}
	n := d.Len()
	if len(d.IDs) != 0 && len(d.IDs) != n {
		return fmt.Errorf("%w: %d ids for %d molecules", ErrIDCount, len(d.IDs), n)
	}
	for _, name := range d.SignalNames() {
		if got := len(d.Signals[name]); got != n {
			return fmt.Errorf("%w: %q has %d values for %d molecules", ErrSignalLength, name, got, n)
		}
		for i, v := range d.Signals[name] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: signal %q value %d is not finite", ErrMalformed, name, i)
			}
		}
	}

	return nil
}

// Load reads and validates the dataset at path. For CSV input,
// signalColumns names the columns treated as signals; JSON and YAML ignore it.
func Load(path string, signalColumns ...string) (*Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	var d *Dataset
	switch format {
	case FormatCSV:
		d, err = ReadCSV(f, signalColumns...)
	case FormatJSON:
		d, err = ReadJSON(f)
	case FormatYAML:
		d, err = ReadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", filepath.Base(path), err)
	}

	return d, nil
}
