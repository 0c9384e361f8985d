// SPDX-License-Identifier: MIT

// Package spectral computes graph Fourier bases of shift operators and
// projects node signals onto them.
//
// The three stages are:
//
//   - FourierBasis / Eigenbasis: validate that the operator is square, finite
//     and symmetric, then return its orthonormal eigenvectors as columns in
//     ascending-eigenvalue order (and the eigenvalues, for Eigenbasis).
//   - GFT / InverseGFT: coefficients = Qᵀ·s and s = Q·coefficients.
//   - FourierDecomposition: GFT(FourierBasis(gso.Adjacency(x, metric)), s).
//
// Decompose and DecomposeBatch keep the intermediate operator and basis for
// callers that export or analyse them. Every function allocates its results
// and leaves its inputs untouched; no package state exists, so concurrent
// calls need no synchronization.
//
// The full spectrum is always returned. Nothing is truncated, filtered or
// re-sorted by magnitude.
package spectral
