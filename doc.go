// Package aoc2023 holds Advent of Code 2023 solvers and the small graph
// toolkit they are built on.
//
// Layout:
//
//	cmd/aoc2023/   CLI: run, list, check
//	internal/      puzzle registry, config, logging and one package per day
//	core/          thread-safe string-keyed graph
//	bfs/           breadth-first traversal and connected components
//	dfs/           longest simple path
//	dijkstra/      generic state-space shortest path
//	flow/          Edmonds–Karp max flow and minimum cut
//	gridgraph/     rune grids, flood fill, grid → graph conversion
//	matrix/        exact rational linear solver
//
// Every day reads its input, parses it, and prints "part1: N" and
// "part2: N". Days share primitives, never each other's code.
package aoc2023
