// SPDX-License-Identifier: MIT

// Package graph holds the sparse molecular similarity graph obtained by
// thresholding a dense shift operator.
//
// A Graph is undirected and weighted: vertex i is molecule i, and an edge
// {i, j} with weight A[i,j] exists when A[i,j] ≥ threshold (i ≠ j). The
// dense operator is the spectral view; the Graph is the structural one,
// used for connectivity and neighbourhood queries:
//
//	a, _ := gso.Adjacency(x, rbf)
//	g, _ := graph.FromAdjacency(a, ids, graph.WithThreshold(0.9))
//	comps, _ := graph.Components(g)
//
// The number of connected components of g equals the multiplicity of the
// zero eigenvalue of the Laplacian of g.Matrix().
//
// Concurrency: a Graph is safe for concurrent use; reads share an RWMutex.
//
// Determinism: Vertices, Edges, NeighborIDs and Components return results in
// insertion (molecule) order.
package graph
