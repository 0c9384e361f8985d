// SPDX-License-Identifier: MIT

package spectral_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
	"github.com/katalvlaran/chemsp/spectral"
)

// PipelineSuite runs the full decomposition over the three-molecule RBF graph.
type PipelineSuite struct {
	suite.Suite
	x      *gso.Representations
	signal []float64
}

func (s *PipelineSuite) SetupTest() {
	var err error
	s.x, err = gso.NewRepresentations(scenarioX)
	s.Require().NoError(err)
	s.signal = []float64{1.5, -0.2, 0.7}
}

func (s *PipelineSuite) TestEqualsManualComposition() {
	got, err := spectral.FourierDecomposition(scenarioX, rbf, s.signal)
	s.Require().NoError(err)

	a, err := gso.Adjacency(s.x, rbf)
	s.Require().NoError(err)
	q, err := spectral.FourierBasis(a)
	s.Require().NoError(err)
	want, err := spectral.GFT(q, s.signal)
	s.Require().NoError(err)

	s.Require().Equal(want, got)
}

func (s *PipelineSuite) TestAdjacencyBasisIsOrthonormal() {
	a, err := gso.Adjacency(s.x, rbf)
	s.Require().NoError(err)
	b, err := spectral.Eigenbasis(a)
	s.Require().NoError(err)
	requireOrthonormal(s.T(), b.Vectors)
	requireAscending(s.T(), b.Values)

	// RBF similarities near 1 make one dominant eigenvalue close to N.
	s.Require().InDelta(3.0, b.Values[2], 0.2)
}

func (s *PipelineSuite) TestDecomposeDefaultsMatchPipeline() {
	d, err := spectral.Decompose(s.x, rbf, s.signal)
	s.Require().NoError(err)
	want, err := spectral.FourierDecomposition(s.x, rbf, s.signal)
	s.Require().NoError(err)

	s.Require().Equal(gso.OperatorAdjacency, d.Kind)
	s.Require().Equal(want, d.Coefficients)
	s.Require().Equal(3, d.Operator.Rows())
	s.Require().Equal(3, d.Basis.Len())
}

func (s *PipelineSuite) TestDecomposeLaplacian() {
	d, err := spectral.Decompose(s.x, rbf, s.signal, spectral.WithOperator(gso.OperatorLaplacian))
	s.Require().NoError(err)
	s.Require().Equal(gso.OperatorLaplacian, d.Kind)

	// Smallest Laplacian eigenvalue is 0 with a constant eigenvector, so the
	// first coefficient is the signal mean scaled by √N.
	s.Require().InDelta(0, d.Basis.Values[0], tol)
	var sum float64
	for _, v := range s.signal {
		sum += v
	}
	s.Require().InDelta(sum/1.7320508075688772, d.Coefficients[0], tol)

	back, err := spectral.InverseGFT(d.Basis.Vectors, d.Coefficients)
	s.Require().NoError(err)
	s.Require().InDeltaSlice(s.signal, back, tol)
}

func (s *PipelineSuite) TestSignalTooLong() {
	_, err := spectral.FourierDecomposition(s.x, rbf, []float64{1, 2, 3, 4})
	s.Require().ErrorIs(err, spectral.ErrDimensionMismatch)
}

func (s *PipelineSuite) TestErrorsPropagateUnchanged() {
	_, err := spectral.FourierDecomposition("not a matrix", rbf, s.signal)
	var ce *gso.CoercionError
	s.Require().ErrorAs(err, &ce)

	boom := errors.New("boom")
	failing := gso.MetricFunc(func(a, b []float64) (float64, error) { return 0, boom })
	_, err = spectral.FourierDecomposition(s.x, failing, s.signal)
	var me *gso.MetricError
	s.Require().ErrorAs(err, &me)
	s.Require().ErrorIs(err, boom)

	// A metric that is not symmetric is caught at the basis stage.
	directed := gso.MetricFunc(func(a, b []float64) (float64, error) { return a[0] - b[1], nil })
	_, err = spectral.FourierDecomposition(s.x, directed, s.signal)
	var ve *spectral.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Require().Equal(spectral.CheckSymmetric, ve.Check)
	s.Require().ErrorIs(err, matrix.ErrAsymmetry)
}

func (s *PipelineSuite) TestDecomposeBatch() {
	signals := map[string][]float64{
		"logp":  s.signal,
		"mw":    {180.2, 46.1, 60.1},
		"flat":  {1, 1, 1},
		"spike": {0, 1, 0},
	}
	got, err := spectral.DecomposeBatch(context.Background(), s.x, rbf, signals, spectral.WithWorkers(2))
	s.Require().NoError(err)
	s.Require().Len(got.Coefficients, len(signals))

	for name, sig := range signals {
		want, err := spectral.GFT(got.Basis.Vectors, sig)
		s.Require().NoError(err)
		s.Require().Equal(want, got.Coefficients[name], name)
	}
}

func (s *PipelineSuite) TestDecomposeBatchErrors() {
	_, err := spectral.DecomposeBatch(context.Background(), s.x, rbf, map[string][]float64{
		"ok":  {1, 2, 3},
		"bad": {1, 2},
	})
	s.Require().ErrorIs(err, spectral.ErrDimensionMismatch)
	s.Require().Contains(err.Error(), `"bad"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = spectral.DecomposeBatch(ctx, s.x, rbf, map[string][]float64{"a": {1, 2, 3}})
	s.Require().ErrorIs(err, context.Canceled)
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func TestDecomposeBatch_Empty(t *testing.T) {
	got, err := spectral.DecomposeBatch(context.Background(), scenarioX, rbf, nil)
	require.NoError(t, err)
	require.Empty(t, got.Coefficients)
	require.NotNil(t, got.Basis)
}
