package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/aoc2023/core"
)

// arc is one direction of a residual edge pair; rev indexes its partner in
// adj[to].
type arc struct {
	to  int
	rev int
	cap int64
}

// network is a dense residual network indexed by vertex position.
type network struct {
	ids   []string
	index map[string]int
	adj   [][]arc
}

// newNetwork validates g and builds its residual network.
func newNetwork(g *core.Graph, source, sink string) (*network, error) {
	// 1) Validate endpoints
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	// 2) Index vertices
	ids := g.Vertices()
	n := &network{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]arc, len(ids)),
	}
	for i, id := range ids {
		n.index[id] = i
	}

	// 3) Add arcs; an undirected edge becomes two independent arcs
	unit := !g.Weighted()
	for _, e := range g.Edges() {
		c := e.Weight
		if unit {
			c = 1
		}
		if c < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		if e.From == e.To {
			continue
		}
		u, v := n.index[e.From], n.index[e.To]
		n.addArc(u, v, c)
		if !e.Directed {
			n.addArc(v, u, c)
		}
	}

	return n, nil
}

func (n *network) addArc(u, v int, c int64) {
	n.adj[u] = append(n.adj[u], arc{to: v, rev: len(n.adj[v]), cap: c})
	n.adj[v] = append(n.adj[v], arc{to: u, rev: len(n.adj[u]) - 1, cap: 0})
}

// maxFlow pushes flow along shortest augmenting paths until none remain or
// limit (if positive) is reached.
func (n *network) maxFlow(ctx context.Context, s, t int, limit int64) (int64, error) {
	var total int64
	parent := make([]int, len(n.ids)) // index into adj[prev] of the arc used
	prevV := make([]int, len(n.ids))
	for limit <= 0 || total < limit {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		// 1) BFS for an augmenting path
		for i := range prevV {
			prevV[i] = -1
		}
		prevV[s] = s
		queue := []int{s}
		for head := 0; head < len(queue) && prevV[t] < 0; head++ {
			u := queue[head]
			for i, a := range n.adj[u] {
				if a.cap > 0 && prevV[a.to] < 0 {
					prevV[a.to] = u
					parent[a.to] = i
					queue = append(queue, a.to)
				}
			}
		}
		if prevV[t] < 0 {
			break
		}

		// 2) Bottleneck, clipped to the remaining limit
		bottle := int64(-1)
		for v := t; v != s; v = prevV[v] {
			c := n.adj[prevV[v]][parent[v]].cap
			if bottle < 0 || c < bottle {
				bottle = c
			}
		}
		if limit > 0 && total+bottle > limit {
			bottle = limit - total
		}

		// 3) Augment
		for v := t; v != s; v = prevV[v] {
			a := &n.adj[prevV[v]][parent[v]]
			a.cap -= bottle
			n.adj[v][a.rev].cap += bottle
		}
		total += bottle
	}

	return total, nil
}

// reachable marks vertices reachable from s over arcs with spare capacity.
func (n *network) reachable(s int) []bool {
	seen := make([]bool, len(n.ids))
	seen[s] = true
	stack := []int{s}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range n.adj[u] {
			if a.cap > 0 && !seen[a.to] {
				seen[a.to] = true
				stack = append(stack, a.to)
			}
		}
	}

	return seen
}

// residualGraph exports the arcs with spare capacity as a directed weighted
// graph, summing parallel arcs.
func (n *network) residualGraph() (*core.Graph, error) {
	rg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range n.ids {
		if err := rg.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for u, arcs := range n.adj {
		sum := make(map[int]int64)
		for _, a := range arcs {
			if a.cap > 0 {
				sum[a.to] += a.cap
			}
		}
		targets := make([]int, 0, len(sum))
		for v := range sum {
			targets = append(targets, v)
		}
		sort.Ints(targets)
		for _, v := range targets {
			if _, err := rg.AddEdge(n.ids[u], n.ids[v], sum[v]); err != nil {
				return nil, err
			}
		}
	}

	return rg, nil
}
