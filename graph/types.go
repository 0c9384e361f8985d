// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty molecule id.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates the same id was given twice.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrIDCount is returned when ids do not match the operator size.
	ErrIDCount = errors.New("graph: id count differs from operator size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Edge is an undirected weighted connection between two molecules.
// From precedes To in vertex order.
type Edge struct {
	From   string  `json:"from" yaml:"from" msgpack:"from"`
	To     string  `json:"to" yaml:"to" msgpack:"to"`
	Weight float64 `json:"weight" yaml:"weight" msgpack:"weight"`
}

// Option configures FromAdjacency.
type Option func(*Options)

// Options holds the thresholding policy.
type Options struct {
	threshold float64
	loops     bool
	err       error
}

// DefaultOptions keeps every strictly positive off-diagonal entry.
func DefaultOptions() Options {
	return Options{threshold: math.SmallestNonzeroFloat64}
}

// WithThreshold keeps edges whose weight is ≥ t. t must be finite.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: threshold must be finite (%v)", ErrOptionViolation, t)
			return
		}
		o.threshold = t
	}
}

// WithLoops keeps diagonal entries ≥ threshold as self-loops.
func WithLoops() Option {
	return func(o *Options) { o.loops = true }
}

// Graph is an undirected weighted molecular graph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	loops bool

	ids   []string       // vertex order
	index map[string]int // id → position in ids

	// adjacency[i][j] = weight of edge {i, j}; stored in both directions.
	adjacency []map[int]float64
}

// NewGraph creates an empty graph. Only WithLoops is meaningful here.
func NewGraph(opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{loops: o.loops, index: make(map[string]int)}
}
