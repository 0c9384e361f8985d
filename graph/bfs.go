// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"
)

// WalkOption configures BFS.
type WalkOption func(*WalkOptions)

// WalkOptions holds BFS parameters and hooks.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called when a vertex is visited. A returned error aborts
	// the walk and is propagated.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// MinWeight skips edges lighter than this weight.
	MinWeight float64

	err error
}

// DefaultWalkOptions returns background context, no depth limit, no weight
// filter and a no-op hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id string, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to depth d; d == 0 means no limit, d < 0 is
// ErrOptionViolation.
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMinWeight only follows edges with weight ≥ w.
func WithMinWeight(w float64) WalkOption {
	return func(o *WalkOptions) { o.MinWeight = w }
}

// WalkResult is the outcome of a BFS:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type WalkResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the hop-shortest path from the start vertex to dest.
func (r *WalkResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("graph: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

type queueItem struct {
	id    int
	depth int
}

// BFS walks g breadth-first from startID. Neighbours are expanded in vertex
// order, so the visit order is deterministic.
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrOptionViolation, ctx.Err(), or
// the OnVisit error wrapped with the vertex id.
//
// Complexity: O(V + E).
func BFS(g *Graph, startID string, opts ...WalkOption) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	start, ok := g.index[startID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}

	n := len(g.ids)
	res := &WalkResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make([]bool, n)
	queue := []queueItem{{id: start}}
	visited[start] = true
	res.Depth[startID] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		item := queue[0]
		queue = queue[1:]
		id := g.ids[item.id]
		res.Order = append(res.Order, id)
		if err := o.OnVisit(id, item.depth); err != nil {
			return nil, fmt.Errorf("graph: OnVisit error at %q: %w", id, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, j := range g.sortedNeighbors(item.id) {
			if visited[j] || g.adjacency[item.id][j] < o.MinWeight {
				continue
			}
			visited[j] = true
			res.Depth[g.ids[j]] = next
			res.Parent[g.ids[j]] = id
			queue = append(queue, queueItem{id: j, depth: next})
		}
	}

	return res, nil
}

// Components returns the connected components of g, each in BFS order,
// ordered by their first vertex.
func Components(g *Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.Order())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
