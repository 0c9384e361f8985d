// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/chemsp/matrix"
)

// FromAdjacency thresholds the square operator a into a Graph.
// ids name the vertices; nil ids become "0", "1", ….
// Only the upper triangle is read, so a should be symmetric.
//
// Errors: ErrOptionViolation, ErrIDCount, ErrEmptyVertexID,
// ErrDuplicateVertex, matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity: O(N²).
func FromAdjacency(a matrix.Matrix, ids []string, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("graph: FromAdjacency: %w", err)
	}
	n := a.Rows()
	if ids == nil {
		ids = make([]string, n)
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d ids for %d×%d operator", ErrIDCount, len(ids), n, n)
	}

	g := &Graph{loops: o.loops, index: make(map[string]int, n)}
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		start := i + 1
		if o.loops {
			start = i
		}
		for j = start; j < n; j++ {
			if w, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("graph: FromAdjacency: %w", err)
			}
			if w >= o.threshold {
				if err = g.AddEdge(ids[i], ids[j], w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// AddVertex appends a vertex. Adding an existing id is ErrDuplicateVertex.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adjacency = append(g.adjacency, make(map[int]float64))

	return nil
}

// AddEdge sets the weight of the undirected edge {from, to}, replacing any
// previous weight.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	j, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if i == j && !g.loops {
		return ErrLoopNotAllowed
	}
	g.adjacency[i][j] = weight
	g.adjacency[j][i] = weight

	return nil
}

// HasVertex reports whether id is a vertex.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Size returns the number of undirected edges, self-loops included.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var s int
	for i, nbrs := range g.adjacency {
		for j := range nbrs {
			if j >= i {
				s++
			}
		}
	}

	return s
}

// Vertices returns the vertex ids in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.ids...)
}

// Edges returns every edge once, ordered by (From, To) vertex position.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for i := range g.ids {
		for _, j := range g.sortedNeighbors(i) {
			if j >= i {
				out = append(out, Edge{From: g.ids[i], To: g.ids[j], Weight: g.adjacency[i][j]})
			}
		}
	}

	return out
}

// NeighborIDs returns the neighbours of id in vertex order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	nbrs := g.sortedNeighbors(i)
	out := make([]string, len(nbrs))
	for k, j := range nbrs {
		out[k] = g.ids[j]
	}

	return out, nil
}

// Degree returns the weighted degree Σ_j w(id, j) of id.
func (g *Graph) Degree(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	var d float64
	for _, j := range g.sortedNeighbors(i) {
		d += g.adjacency[i][j]
	}

	return d, nil
}

// Matrix returns the dense N×N weighted adjacency of g in vertex order.
// Absent edges are 0.
func (g *Graph) Matrix() (*matrix.Dense, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, err := matrix.NewDense(len(g.ids), len(g.ids))
	if err != nil {
		return nil, fmt.Errorf("graph: Matrix: %w", err)
	}
	for i, nbrs := range g.adjacency {
		for j, w := range nbrs {
			if err = out.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("graph: Matrix: %w", err)
			}
		}
	}

	return out, nil
}

// sortedNeighbors returns neighbour positions of i ascending; caller holds mu.
func (g *Graph) sortedNeighbors(i int) []int {
	out := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		out = append(out, j)
	}
	slices.Sort(out)

	return out
}
