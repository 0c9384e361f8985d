// SPDX-License-Identifier: MIT

package spectral

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
)

// BatchDecomposition is the result of projecting several signals onto one basis.
type BatchDecomposition struct {
	Kind         gso.Operator
	Operator     *matrix.Dense
	Basis        *Basis
	Coefficients map[string][]float64 // keyed like the input signals
}

// DecomposeBatch builds the operator and basis of x once and projects every
// named signal onto it concurrently.
// Implementation:
//   - Stage 1: operator and Eigenbasis as in Decompose.
//   - Stage 2: one errgroup task per signal (bounded by WithWorkers); each
//     task checks ctx before projecting and writes only its own result.
//
// Errors: the first stage error unchanged; the first GFT error wrapped with
// the signal name; ctx.Err() when cancelled.
func DecomposeBatch(ctx context.Context, x any, metric gso.Metric, signals map[string][]float64, opts ...Option) (*BatchDecomposition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := NewOptions(opts...)
	op, basis, err := operatorBasis(x, metric, o)
	if err != nil {
		return nil, err
	}

	out := &BatchDecomposition{
		Kind:         o.operator,
		Operator:     op,
		Basis:        basis,
		Coefficients: make(map[string][]float64, len(signals)),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for name, signal := range signals {
		name, signal := name, signal
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := GFT(basis.Vectors, signal)
			if err != nil {
				return fmt.Errorf("signal %q: %w", name, err)
			}
			mu.Lock()
			out.Coefficients[name] = c
			mu.Unlock()

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
