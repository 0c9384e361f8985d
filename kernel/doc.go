// SPDX-License-Identifier: MIT

// Package kernel provides ready-made metrics for building molecular graphs.
//
// Every kernel satisfies gso.Metric; RBF additionally implements
// gso.BatchMetric and fills the whole similarity matrix in one call. All
// kernels are pure, symmetric and deterministic, so the batched and pairwise
// paths of gso.Adjacency agree for them.
//
// Similarities (RBF, Linear, Cosine, Tanimoto) grow with resemblance;
// Euclidean is a distance and grows with dissimilarity.
package kernel
