package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/aoc2023/core"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value (capped at opts.Limit when set)
//   - residual: directed graph of remaining capacities after the flow
//   - err: non-nil on missing vertices, negative capacities or cancellation.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow int64, residual *core.Graph, err error) {
	// 1) Build residual network
	n, err := newNetwork(g, source, sink)
	if err != nil {
		return 0, nil, err
	}
	var limit int64
	if opts != nil {
		limit = opts.Limit
	}

	// 2) Augment
	maxFlow, err = n.maxFlow(ctx, n.index[source], n.index[sink], limit)
	if err != nil {
		return 0, nil, err
	}

	// 3) Export remaining capacities
	residual, err = n.residualGraph()
	if err != nil {
		return 0, nil, err
	}

	return maxFlow, residual, nil
}

// MinCut finds a minimum source/sink cut of g. The cut value equals the
// maximum flow; the crossing edges are the original edges leaving the
// source side.
func MinCut(ctx context.Context, g *core.Graph, source, sink string) (Cut, error) {
	// 1) Saturate
	n, err := newNetwork(g, source, sink)
	if err != nil {
		return Cut{}, err
	}
	value, err := n.maxFlow(ctx, n.index[source], n.index[sink], 0)
	if err != nil {
		return Cut{}, err
	}

	// 2) Split vertices by residual reachability
	side := n.reachable(n.index[source])
	cut := Cut{Value: value}
	for i, id := range n.ids {
		if side[i] {
			cut.Source = append(cut.Source, id)
		} else {
			cut.Sink = append(cut.Sink, id)
		}
	}

	// 3) Collect crossing edges
	inSource := func(id string) bool { return side[n.index[id]] }
	for _, e := range g.Edges() {
		from, to := inSource(e.From), inSource(e.To)
		switch {
		case from && !to:
			cut.Edges = append(cut.Edges, e)
		case !e.Directed && to && !from:
			cut.Edges = append(cut.Edges, e)
		}
	}
	sort.Strings(cut.Source)
	sort.Strings(cut.Sink)

	return cut, nil
}
