// SPDX-License-Identifier: MIT

// Package gso builds graph shift operators from molecular representations.
//
// A representation set holds N feature vectors of dimension M; node i of
// every matrix built here is representation i. Given a Metric, the package
// produces:
//
//   - Adjacency: A[i,j] = metric(x_i, x_j), N×N.
//   - Degree:    D = diag(Σ_j A[i,j]).
//   - Laplacian: L = D − A.
//
// Metrics advertise batched evaluation by implementing BatchMetric; Adjacency
// branches on that capability before evaluating anything, and falls back to
// one Pair call per ordered pair otherwise. Both paths agree only when the
// metric is pure, symmetric and deterministic; this is a precondition of the
// Metric contract and is not checked here. Symmetry of the result is enforced
// later, at the spectral boundary.
//
// All functions are stateless: they allocate fresh results and never mutate
// their inputs.
package gso
