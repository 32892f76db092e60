// File: methods.go
// Role: vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() sorted lexicographically, Edges() by insertion order,
//     Neighbors()/NeighborIDs() by neighbour ID then edge order.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id; caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are created. For undirected graphs the adjacency is
// mirrored so the edge is visible from both ends.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Multi-edge constraint, checked in both orientations for undirected graphs
	if !g.allowMulti {
		if len(g.adjacency[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 3) Ensure endpoints
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 4) Store edge and adjacency
	g.nextEdgeID++
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !g.directed && from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// link records eid under adjacency[from][to]; caller holds the write lock.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}

// RemoveEdge deletes every edge from→to (and, for undirected graphs, the
// same edges seen as to→from). Returns ErrEdgeNotFound if none exist.
// Complexity: O(k) for k parallel edges.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := g.adjacency[from][to]
	if len(ids) == 0 {
		return ErrEdgeNotFound
	}
	for eid := range ids {
		e := g.edges[eid]
		delete(g.edges, eid)
		delete(g.adjacency[e.From][e.To], eid)
		if len(g.adjacency[e.From][e.To]) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
		if !e.Directed {
			delete(g.adjacency[e.To][e.From], eid)
			if len(g.adjacency[e.To][e.From]) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}

	return nil
}

// HasEdge reports whether at least one edge connects from→to.
// For undirected graphs the order of endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns the edges leaving id, each oriented away from id.
// Undirected edges are returned as copies whose From equals id, keeping the
// original ID. Sorted by neighbour ID, then by insertion order.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, ids := range g.adjacency[id] {
		for eid := range ids {
			e := g.edges[eid]
			if e.From != id {
				mirrored := *e
				mirrored.From, mirrored.To = e.To, e.From
				e = &mirrored
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].seq < out[j].seq
	})

	return out, nil
}

// NeighborIDs returns the sorted, de-duplicated IDs reachable from id by one edge.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs in lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. The edge ID sequence carries over so new edges never collide.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		clone.ensureVertex(id)
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.link(e.From, e.To, eid)
		if !e.Directed && e.From != e.To {
			clone.link(e.To, e.From, eid)
		}
	}

	return clone
}
