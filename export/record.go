// SPDX-License-Identifier: MIT

package export

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/chemsp/matrix"
	"github.com/katalvlaran/chemsp/spectral"
	"github.com/katalvlaran/chemsp/spectrum"
)

// Meta describes how a decomposition was produced.
type Meta struct {
	Kernel      string  `json:"kernel" yaml:"kernel" msgpack:"kernel"`
	LengthScale float64 `json:"length_scale,omitempty" yaml:"length_scale,omitempty" msgpack:"length_scale,omitempty"`
	Source      string  `json:"source,omitempty" yaml:"source,omitempty" msgpack:"source,omitempty"`
	LowPassK    int     `json:"low_pass_k" yaml:"low_pass_k" msgpack:"low_pass_k"`
}

// SignalRecord is the spectrum of one signal.
type SignalRecord struct {
	Values       []float64        `json:"values" yaml:"values" msgpack:"values"`
	Coefficients []float64        `json:"coefficients" yaml:"coefficients" msgpack:"coefficients"`
	Summary      spectrum.Summary `json:"summary" yaml:"summary" msgpack:"summary"`
}

// Record is the persisted form of one decomposition run.
type Record struct {
	RunID       string                  `json:"run_id" yaml:"run_id" msgpack:"run_id"`
	CreatedAt   time.Time               `json:"created_at" yaml:"created_at" msgpack:"created_at"`
	Fingerprint string                  `json:"fingerprint" yaml:"fingerprint" msgpack:"fingerprint"`
	Meta        Meta                    `json:"meta" yaml:"meta" msgpack:"meta"`
	Operator    string                  `json:"operator" yaml:"operator" msgpack:"operator"`
	IDs         []string                `json:"ids,omitempty" yaml:"ids,omitempty" msgpack:"ids,omitempty"`
	Matrix      [][]float64             `json:"matrix" yaml:"matrix" msgpack:"matrix"`
	Eigenvalues []float64               `json:"eigenvalues" yaml:"eigenvalues" msgpack:"eigenvalues"`
	Basis       [][]float64             `json:"basis" yaml:"basis" msgpack:"basis"`
	Signals     map[string]SignalRecord `json:"signals" yaml:"signals" msgpack:"signals"`
}

// NewRecord builds a Record from a batch decomposition and the signals that
// produced it. ids may be nil.
func NewRecord(meta Meta, res *spectral.BatchDecomposition, signals map[string][]float64, ids []string) (*Record, error) {
	if res == nil || res.Basis == nil {
		return nil, fmt.Errorf("export: NewRecord: %w", matrix.ErrNilMatrix)
	}
	rec := &Record{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Fingerprint: Fingerprint(res.Operator, signals),
		Meta:        meta,
		Operator:    res.Kind.String(),
		IDs:         ids,
		Matrix:      res.Operator.ToRows(),
		Eigenvalues: append([]float64(nil), res.Basis.Values...),
		Basis:       res.Basis.Vectors.ToRows(),
		Signals:     make(map[string]SignalRecord, len(res.Coefficients)),
	}
	for name, c := range res.Coefficients {
		sum, err := spectrum.Summarize(c, meta.LowPassK)
		if err != nil {
			return nil, fmt.Errorf("export: NewRecord: signal %q: %w", name, err)
		}
		rec.Signals[name] = SignalRecord{
			Values:       append([]float64(nil), signals[name]...),
			Coefficients: c,
			Summary:      sum,
		}
	}

	return rec, nil
}

// Fingerprint hashes the operator entries (row-major) and the signals
// (sorted by name) with xxhash-64 and returns the sum as 16 hex digits.
func Fingerprint(op *matrix.Dense, signals map[string][]float64) string {
	d := xxhash.New()
	var buf [8]byte
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	if op != nil {
		r, c := op.Shape()
		binary.LittleEndian.PutUint64(buf[:], uint64(r)<<32|uint64(c))
		_, _ = d.Write(buf[:])
		for _, row := range op.ToRows() {
			for _, v := range row {
				putFloat(v)
			}
		}
	}

	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0})
		for _, v := range signals[name] {
			putFloat(v)
		}
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

// ParseFingerprint decodes the hex form produced by Fingerprint.
func ParseFingerprint(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
