// Package bfs provides breadth-first search over a core.Graph, returning
// edge-count distances, parent links and visit order, plus connected
// component discovery.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and BFS enqueues neighbours in
//	that order, so Order and Components are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:        O(V + E) time, O(V) memory.
//   - Components: O(V + E) time, O(V) memory.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to d edges from the start. d must be >= 0;
// zero means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs fn; returning false skips the step curr→neighbor.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Order records vertices in visit order.
	Order []string

	// Depth maps each reached vertex to its edge distance from the start.
	Depth map[string]int

	// Parent maps each reached vertex (except the start) to its BFS-tree parent.
	Parent map[string]string
}

// PathTo rebuilds the start→dest path from Parent links, or nil if dest was not reached.
func (r *Result) PathTo(dest string) []string {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
