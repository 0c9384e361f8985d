// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/export"
	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/spectral"
)

var scenarioX = [][]float64{
	{0.1, 0.1, 0.1},
	{0.1, 0.2, 0.3},
	{0.2, 0.4, 0.3},
}

var rbf = gso.MetricFunc(func(a, b []float64) (float64, error) {
	var d2 float64
	for k := range a {
		d := a[k] - b[k]
		d2 += d * d
	}

	return math.Exp(-d2 / 2), nil
})

func newRecord(t *testing.T, signals map[string][]float64) *export.Record {
	t.Helper()
	res, err := spectral.DecomposeBatch(context.Background(), scenarioX, rbf, signals,
		spectral.WithOperator(gso.OperatorLaplacian))
	require.NoError(t, err)
	rec, err := export.NewRecord(export.Meta{Kernel: "rbf", LengthScale: 1, LowPassK: 1},
		res, signals, []string{"a", "b", "c"})
	require.NoError(t, err)

	return rec
}

func TestNewRecord(t *testing.T) {
	signals := map[string][]float64{"logp": {-0.31, 0.25, 0.88}, "flat": {1, 1, 1}}
	rec := newRecord(t, signals)

	_, err := uuid.Parse(rec.RunID)
	require.NoError(t, err)
	require.Equal(t, "laplacian", rec.Operator)
	require.Len(t, rec.Matrix, 3)
	require.Len(t, rec.Basis, 3)
	require.Len(t, rec.Eigenvalues, 3)
	require.Len(t, rec.Signals, 2)
	require.Equal(t, signals["logp"], rec.Signals["logp"].Values)

	// A constant signal on a connected graph is pure zero frequency.
	flat := rec.Signals["flat"]
	require.InDelta(t, 1.0, flat.Summary.LowPass, 1e-9)
	require.InDelta(t, 3.0, flat.Summary.Energy, 1e-9)

	_, err = export.NewRecord(export.Meta{}, nil, nil, nil)
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	signals := map[string][]float64{"logp": {-0.31, 0.25, 0.88}}
	a := newRecord(t, signals)
	b := newRecord(t, signals)
	require.NotEqual(t, a.RunID, b.RunID)
	require.Equal(t, a.Fingerprint, b.Fingerprint, "same graph and signals")
	require.Len(t, a.Fingerprint, 16)
	_, err := export.ParseFingerprint(a.Fingerprint)
	require.NoError(t, err)

	c := newRecord(t, map[string][]float64{"logp": {-0.31, 0.25, 0.89}})
	require.NotEqual(t, a.Fingerprint, c.Fingerprint)

	d := newRecord(t, map[string][]float64{"logd": {-0.31, 0.25, 0.88}})
	require.NotEqual(t, a.Fingerprint, d.Fingerprint, "signal names are hashed")
}

func TestWriteAndReadFile(t *testing.T) {
	rec := newRecord(t, map[string][]float64{"logp": {-0.31, 0.25, 0.88}})
	dir := t.TempDir()

	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML, export.FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			path, err := export.WriteFile(dir, rec, f)
			require.NoError(t, err)
			require.Contains(t, path, rec.RunID+f.Ext())

			got, err := export.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, rec.RunID, got.RunID)
			require.Equal(t, rec.Fingerprint, got.Fingerprint)
			require.Equal(t, rec.Meta, got.Meta)
			require.True(t, rec.CreatedAt.Equal(got.CreatedAt))
			require.Equal(t, rec.Signals["logp"].Coefficients, got.Signals["logp"].Coefficients)
		})
	}
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]export.Format{
		"JSON": export.FormatJSON, "yml": export.FormatYAML, "mp": export.FormatMsgpack,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := export.ParseFormat("xml")
	require.ErrorIs(t, err, export.ErrUnknownFormat)

	var buf bytes.Buffer
	require.ErrorIs(t, export.Encode(&buf, struct{}{}, export.Format("xml")), export.ErrUnknownFormat)
	_, err = export.Decode(&buf, export.Format("xml"))
	require.ErrorIs(t, err, export.ErrUnknownFormat)
	_, err = export.ReadFile("record.txt")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}
