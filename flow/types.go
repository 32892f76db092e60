// Package flow computes maximum flows and minimum cuts on *core.Graph.
//
// Capacities are edge weights. On an unweighted graph every edge has
// capacity 1, which turns max-flow into counting edge-disjoint paths and
// MinCut into finding the fewest edges whose removal separates two vertices.
// Undirected edges carry capacity in both directions; parallel edges add up.
//
// Algorithms:
//
//   - EdmondsKarp: BFS for shortest augmenting paths.
//     Time O(V · E²), memory O(V + E).
//   - MinCut: EdmondsKarp followed by a residual reachability sweep that
//     splits the vertices and lists the saturated original edges.
//
// Errors:
//
//   - ErrSourceNotFound / ErrSinkNotFound for missing endpoints.
//   - ErrSameEndpoints when source == sink.
//   - EdgeError for a negative capacity.
//   - ctx.Err() on cancellation.
package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source and sink are the same vertex")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("flow: graph is nil")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow algorithms. A nil *FlowOptions uses
// the defaults.
//   - Limit: stop augmenting once the flow reaches Limit (0 = no limit).
type FlowOptions struct {
	Limit int64
}

// Cut is a minimum s-t cut.
//
// Source lists the vertices reachable from the source in the final residual
// network, Sink the rest; both sorted. Edges are the original edges crossing
// from Source to Sink, in edge-ID order.
type Cut struct {
	Value  int64
	Source []string
	Sink   []string
	Edges  []*core.Edge
}
