package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// arc is an outgoing edge in the dense index space.
type arc struct {
	to     int
	weight int64
}

// pathWalker holds the mutable state of one LongestPath run.
type pathWalker struct {
	opts    Options
	adj     [][]arc
	visited []bool
	target  int
	best    int64
	found   bool
	steps   int
}

// LongestPath returns the maximum total edge weight over all simple paths
// from → to in g. Edge direction is honoured; undirected edges are walkable
// both ways. Vertices are mapped to dense indices once so the backtracking
// loop touches only slices.
func LongestPath(g *core.Graph, from, to string, opts ...Option) (int64, error) {
	// 1. Validate input
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return 0, ErrStartVertexNotFound
	}
	if !g.HasVertex(to) {
		return 0, ErrTargetVertexNotFound
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.CheckEvery <= 0 {
		o.CheckEvery = 1
	}

	// 2. Index vertices and flatten adjacency
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]arc, len(ids))
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return 0, fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
		for _, e := range nbrs {
			adj[i] = append(adj[i], arc{to: index[e.To], weight: e.Weight})
		}
	}

	// 3. Backtrack
	w := &pathWalker{
		opts:    o,
		adj:     adj,
		visited: make([]bool, len(ids)),
		target:  index[to],
	}
	if err := w.walk(index[from], 0); err != nil {
		return 0, err
	}
	if !w.found {
		return 0, ErrNoPath
	}

	return w.best, nil
}

// walk extends the current path at u with accumulated weight dist.
func (w *pathWalker) walk(u int, dist int64) error {
	w.steps++
	if w.steps%w.opts.CheckEvery == 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
	}
	if u == w.target {
		if !w.found || dist > w.best {
			w.best, w.found = dist, true
		}
		return nil
	}

	w.visited[u] = true
	for _, a := range w.adj[u] {
		if w.visited[a.to] {
			continue
		}
		if err := w.walk(a.to, dist+a.weight); err != nil {
			return err
		}
	}
	w.visited[u] = false

	return nil
}
