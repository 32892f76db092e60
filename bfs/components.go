package bfs

import "github.com/katalvlaran/aoc2023/core"

// Components partitions the vertices of g into connected components.
// Each component lists its vertices in BFS order from its smallest vertex ID;
// components are ordered by that smallest ID.
//
// g is expected to be undirected. On a directed graph every vertex still lands
// in exactly one group, but groups follow forward reachability only.
//
// Time:   O(V + E)
// Memory: O(V)
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		// skip vertices already claimed by an earlier component
		filtered := make([]Option, 0, len(opts)+1)
		filtered = append(filtered, opts...)
		filtered = append(filtered, WithFilterNeighbor(chain(opts, func(_, nbr string) bool { return !seen[nbr] })))
		res, err := BFS(g, v, filtered...)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// chain composes any FilterNeighbor set by opts with extra.
func chain(opts []Option, extra func(curr, nbr string) bool) func(curr, nbr string) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	base := o.FilterNeighbor

	return func(curr, nbr string) bool { return base(curr, nbr) && extra(curr, nbr) }
}
