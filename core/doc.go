// Package core provides the thread-safe, string-keyed Graph that the puzzle
// solvers build when a day reduces to a graph question (junction networks,
// wiring diagrams, flow networks).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Constant-time edge lookups via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", ...)
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return sorted results, so every
//	algorithm built on top of the graph visits vertices in a stable order and
//	answers never depend on map iteration.
//
// Orientation:
//
//	Neighbors(id) always reports edges oriented away from id. An undirected
//	edge stored as A–B is reported as A→B from A and as B→A from B (same ID).
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
