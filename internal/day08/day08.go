// Package day08 follows left/right instructions through a node network.
// Part 2 walks every "..A" node at once; each walk settles into a cycle
// through a "..Z" node and the answer is the LCM of the cycle lengths.
package day08

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 8,
		Title:  "Haunted Wasteland",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			n, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
			return puzzle.Answer(v), err
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			n, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := n.GhostSteps()
			return puzzle.Answer(v), err
		},
	})
}

var (
	// ErrNoExit is returned when a walk cannot reach an exit node.
	ErrNoExit = errors.New("day08: walk never reaches an exit")

	// ErrUnknownNode is returned for a walk starting at a missing node.
	ErrUnknownNode = errors.New("day08: unknown node")
)

// Network is the instruction string and the node table.
type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

// Parse reads the instruction line, a blank line and "AAA = (BBB, CCC)" nodes.
func Parse(in string) (*Network, error) {
	blocks := puzzle.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzle.BadInput(1, "want instructions, a blank line, then nodes")
	}
	n := &Network{Instructions: strings.TrimSpace(blocks[0][0]), Nodes: make(map[string][2]string)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, puzzle.BadInput(1, "instructions must be L/R only")
	}
	for i, l := range blocks[1] {
		name, rest, ok := strings.Cut(l, " = (")
		left, right, ok2 := strings.Cut(strings.TrimSuffix(rest, ")"), ", ")
		if !ok || !ok2 || !strings.HasSuffix(rest, ")") {
			return nil, puzzle.BadInput(i+3, "want 'AAA = (BBB, CCC)', got %q", l)
		}
		n.Nodes[name] = [2]string{left, right}
	}
	for name, next := range n.Nodes {
		for _, t := range next {
			if _, ok := n.Nodes[t]; !ok {
				return nil, fmt.Errorf("%w: node %s points to missing %s", puzzle.ErrBadInput, name, t)
			}
		}
	}

	return n, nil
}

func (n *Network) next(node string, step int) string {
	if n.Instructions[step%len(n.Instructions)] == 'L' {
		return n.Nodes[node][0]
	}
	return n.Nodes[node][1]
}

// limit bounds a walk: after this many steps every (node, instruction
// offset) state has repeated.
func (n *Network) limit() int {
	return len(n.Nodes)*len(n.Instructions) + 1
}

// Steps counts the steps from start until exit holds.
func (n *Network) Steps(start string, exit func(string) bool) (int64, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNode, start)
	}
	cur := start
	for step := 0; step <= n.limit(); step++ {
		if exit(cur) {
			return int64(step), nil
		}
		cur = n.next(cur, step)
	}

	return 0, fmt.Errorf("%w: from %s", ErrNoExit, start)
}

// Cycle returns the distance between the first and second exit hit on the
// walk from start.
func (n *Network) Cycle(start string, exit func(string) bool) (int64, error) {
	first := -1
	cur := start
	for step := 0; step <= 2*n.limit(); step++ {
		if exit(cur) && step > 0 {
			if first >= 0 {
				return int64(step - first), nil
			}
			first = step
		}
		cur = n.next(cur, step)
	}

	return 0, fmt.Errorf("%w: no cycle from %s", ErrNoExit, start)
}

// GhostSteps walks every node ending in 'A' simultaneously until all stand
// on nodes ending in 'Z'.
func (n *Network) GhostSteps() (int64, error) {
	isExit := func(s string) bool { return strings.HasSuffix(s, "Z") }
	var cycles []int64
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		c, err := n.Cycle(name, isExit)
		if err != nil {
			return 0, err
		}
		cycles = append(cycles, c)
	}
	if len(cycles) == 0 {
		return 0, fmt.Errorf("%w: no start nodes", ErrNoExit)
	}

	return puzzle.LCM(cycles...), nil
}
