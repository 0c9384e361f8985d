// SPDX-License-Identifier: MIT

// Package chemsp is graph signal processing for molecular data: it turns a
// set of molecular feature vectors into a similarity graph and analyses
// property signals in that graph's frequency domain.
//
// Pipeline:
//
//	features ──kernel──▶ adjacency A ──▶ Laplacian L = D − A
//	                          │                 │
//	                          └──── eigenbasis U (ascending λ) ────▶ GFT: ĉ = Uᵀx
//
// Subpackages:
//
//	matrix/   — dense matrices, validators, symmetric Jacobi eigensolver
//	gso/      — representation coercion, Metric contract, adjacency/degree/Laplacian
//	kernel/   — RBF, linear, cosine, Euclidean and Tanimoto metrics
//	spectral/ — Fourier basis, GFT / inverse GFT, single and batched pipelines
//	spectrum/ — Gini, energy and low-pass summaries of coefficient vectors
//	graph/    — thresholded similarity graphs, BFS and connected components
//	dataset/  — CSV, JSON and YAML dataset loading
//	export/   — JSON, YAML and msgpack run records with xxhash fingerprints
//
// The chemsp command (cmd/chemsp) wires these together behind a cobra CLI
// configured through viper.
//
// Quick example:
//
//	basis, _ := spectral.FourierBasis(a)
//	coeffs, _ := spectral.GFT(basis, logP)
//
//	go install github.com/katalvlaran/chemsp/cmd/chemsp@latest
package chemsp
