package main

import (
	_ "github.com/katalvlaran/aoc2023/internal/day01"
	_ "github.com/katalvlaran/aoc2023/internal/day02"
	_ "github.com/katalvlaran/aoc2023/internal/day03"
	_ "github.com/katalvlaran/aoc2023/internal/day04"
	_ "github.com/katalvlaran/aoc2023/internal/day05"
	_ "github.com/katalvlaran/aoc2023/internal/day06"
	_ "github.com/katalvlaran/aoc2023/internal/day07"
	_ "github.com/katalvlaran/aoc2023/internal/day08"
	_ "github.com/katalvlaran/aoc2023/internal/day09"
	_ "github.com/katalvlaran/aoc2023/internal/day10"
	_ "github.com/katalvlaran/aoc2023/internal/day11"
	_ "github.com/katalvlaran/aoc2023/internal/day12"
	_ "github.com/katalvlaran/aoc2023/internal/day13"
	_ "github.com/katalvlaran/aoc2023/internal/day14"
	_ "github.com/katalvlaran/aoc2023/internal/day15"
	_ "github.com/katalvlaran/aoc2023/internal/day16"
	_ "github.com/katalvlaran/aoc2023/internal/day17"
	_ "github.com/katalvlaran/aoc2023/internal/day18"
	_ "github.com/katalvlaran/aoc2023/internal/day23"
	_ "github.com/katalvlaran/aoc2023/internal/day24"
	_ "github.com/katalvlaran/aoc2023/internal/day25"
)
