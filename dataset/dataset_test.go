// SPDX-License-Identifier: MIT

package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/dataset"
	"github.com/katalvlaran/chemsp/gso"
)

const moleculesCSV = `id,f1,f2,f3,logp
# three small alcohols
ethanol, 0.1,0.1,0.1,-0.31
propanol,0.1,0.2,0.3,0.25
butanol, 0.2,0.4,0.3,0.88
`

const moleculesYAML = `ids: [ethanol, propanol, butanol]
features:
  - [0.1, 0.1, 0.1]
  - [0.1, 0.2, 0.3]
  - [0.2, 0.4, 0.3]
signals:
  logp: [-0.31, 0.25, 0.88]
`

const moleculesJSON = `{
  "ids": ["ethanol", "propanol", "butanol"],
  "features": [[0.1, 0.1, 0.1], [0.1, 0.2, 0.3], [0.2, 0.4, 0.3]],
  "signals": {"logp": [-0.31, 0.25, 0.88]}
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func requireMolecules(t *testing.T, d *dataset.Dataset) {
	t.Helper()
	require.Equal(t, 3, d.Len())
	require.Equal(t, []string{"ethanol", "propanol", "butanol"}, d.IDs)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, d.Features[1])
	logp, err := d.Signal("logp")
	require.NoError(t, err)
	require.Equal(t, []float64{-0.31, 0.25, 0.88}, logp)
	require.Equal(t, []string{"logp"}, d.SignalNames())

	x, err := d.Representations()
	require.NoError(t, err)
	require.Equal(t, 3, x.Len())
	require.Equal(t, 3, x.Dim())
}

func TestLoad_AllFormats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"CSV", "mol.csv", moleculesCSV},
		{"YAML", "mol.yaml", moleculesYAML},
		{"YML", "mol.yml", moleculesYAML},
		{"JSON", "mol.json", moleculesJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dataset.Load(writeFile(t, tt.file, tt.body), "logp")
			require.NoError(t, err)
			requireMolecules(t, d)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := dataset.Load(writeFile(t, "mol.xlsx", "x"))
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = dataset.Load(writeFile(t, "mol.csv", moleculesCSV), "solubility")
	require.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestReadCSV(t *testing.T) {
	// Without signal columns, logp is a fourth feature.
	d, err := dataset.ReadCSV(strings.NewReader(moleculesCSV))
	require.NoError(t, err)
	require.Len(t, d.Features[0], 4)
	require.Empty(t, d.Signals)

	_, err = dataset.ReadCSV(strings.NewReader("f1,f2\n1,x\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadCSV(strings.NewReader("f1,f2\n1,2\n3\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadCSV(strings.NewReader("f1,f2\n"))
	require.ErrorIs(t, err, gso.ErrInputCoercion)

	_, err = dataset.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestReadYAMLAndJSON_Validation(t *testing.T) {
	_, err := dataset.ReadYAML(strings.NewReader("features: [[1, 2], [3, 4]]\nsignals:\n  s: [1]\n"))
	require.ErrorIs(t, err, dataset.ErrSignalLength)

	_, err = dataset.ReadYAML(strings.NewReader("ids: [a]\nfeatures: [[1, 2], [3, 4]]\n"))
	require.ErrorIs(t, err, dataset.ErrIDCount)

	_, err = dataset.ReadYAML(strings.NewReader("features: [[1, 2], [3]]\n"))
	require.ErrorIs(t, err, gso.ErrRaggedInput)

	_, err = dataset.ReadYAML(strings.NewReader("features: [[1]]\nlabels: [x]\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadYAML(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadJSON(strings.NewReader(`{"features": [[1]], "extra": 1}`))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ReadJSON(strings.NewReader(`{"features": []}`))
	require.ErrorIs(t, err, gso.ErrEmptyInput)

	d, err := dataset.ReadJSON(strings.NewReader(`{"features": [[1, 2]]}`))
	require.NoError(t, err)
	_, err = d.Signal("logp")
	require.ErrorIs(t, err, dataset.ErrNoSignal)
}
