// Package day25 splits a wiring diagram into two groups by cutting exactly
// three wires and multiplies the group sizes.
//
// With unit capacities, the max flow between two components equals the
// number of edge-disjoint paths between them. Fixing one source, any sink
// with flow Wires lies in the other group, and the minimum cut between them
// is the set of wires to disconnect.
package day25

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/flow"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Wires is the number of wires to cut.
const Wires = 3

// ErrNoCut is returned when no cut of exactly Wires wires splits the diagram.
var ErrNoCut = errors.New("day25: no cut of three wires splits the diagram")

func init() {
	puzzle.Register(puzzle.Day{
		Number: 25,
		Title:  "Snowverload",
		Part1: func(ctx context.Context, in string) (puzzle.Answer, error) {
			g, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := GroupProduct(ctx, g, Wires)
			return puzzle.Answer(v), err
		},
		Part2: puzzle.NoPart,
	})
}

// Parse reads lines like "jqt: rhn xhk nvd" into an undirected graph.
func Parse(in string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, l := range puzzle.Lines(in) {
		name, rest, ok := strings.Cut(l, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, puzzle.BadInput(i+1, "want \"name: other ...\"")
		}
		others := strings.Fields(rest)
		if len(others) == 0 {
			return nil, puzzle.BadInput(i+1, "%s connects to nothing", name)
		}
		for _, o := range others {
			if o == name {
				return nil, puzzle.BadInput(i+1, "%s connects to itself", name)
			}
			if g.HasEdge(name, o) {
				continue
			}
			if _, err := g.AddEdge(name, o, 0); err != nil {
				return nil, puzzle.BadInput(i+1, "%v", err)
			}
		}
	}
	if g.VertexCount() < 2 {
		return nil, puzzle.BadInput(1, "need at least two components")
	}

	return g, nil
}

// Split finds a cut of exactly wires edges leaving at least two components
// on each side.
func Split(ctx context.Context, g *core.Graph, wires int64) (flow.Cut, error) {
	ids := g.Vertices()
	for _, source := range ids {
	sinks:
		for _, sink := range ids {
			if sink == source {
				continue
			}
			// 1) A sink on the source's side has more than wires disjoint paths.
			f, _, err := flow.EdmondsKarp(ctx, g, source, sink, &flow.FlowOptions{Limit: wires + 1})
			if err != nil {
				return flow.Cut{}, err
			}
			if f != wires {
				continue
			}
			// 2) Cut between the two sides; a lone vertex is not a group.
			cut, err := flow.MinCut(ctx, g, source, sink)
			if err != nil {
				return flow.Cut{}, err
			}
			switch {
			case len(cut.Source) == 1:
				// every cut of this source isolates it; try the next one
				break sinks
			case len(cut.Sink) == 1:
				continue
			}

			return cut, nil
		}
	}

	return flow.Cut{}, ErrNoCut
}

// GroupProduct cuts the diagram and returns the product of the two group
// sizes.
func GroupProduct(ctx context.Context, g *core.Graph, wires int64) (int64, error) {
	cut, err := Split(ctx, g, wires)
	if err != nil {
		return 0, err
	}
	h := g.Clone()
	for _, e := range cut.Edges {
		if err := h.RemoveEdge(e.From, e.To); err != nil {
			return 0, fmt.Errorf("day25: cutting %s/%s: %w", e.From, e.To, err)
		}
	}
	comps, err := bfs.Components(h, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	if len(comps) != 2 {
		return 0, fmt.Errorf("%w: %d groups after cutting", ErrNoCut, len(comps))
	}

	return int64(len(comps[0]) * len(comps[1])), nil
}
