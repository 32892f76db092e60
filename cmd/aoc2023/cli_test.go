package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const day01Sample = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

const day01Digits = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const day25Sample = `jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr`

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	logger = zap.NewNop()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.Flags().Int("workers", 0, "")

	return cmd, out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunDays(t *testing.T) {
	dir := t.TempDir()
	inputPath = writeFile(t, dir, "input.txt", day01Sample)
	part = 2
	defer func() { inputPath, part = puzzle.DefaultInput, 0 }()

	cmd, out := newTestCmd()
	require.NoError(t, runDays(cmd, []string{"1"}))
	assert.Equal(t, "part2: 281\n", out.String())
}

func TestRunDays_SeveralDaysWithTemplate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day01.txt", day01Digits)
	writeFile(t, dir, "day25.txt", day25Sample)
	inputPath = filepath.Join(dir, "day%02d.txt")
	defer func() { inputPath = puzzle.DefaultInput }()

	cmd, out := newTestCmd()
	require.NoError(t, runDays(cmd, []string{"1", "25"}))
	assert.Equal(t, "day 01\npart1: 142\npart2: 142\nday 25\npart1: 54\n", out.String())
}

func TestRunDays_Errors(t *testing.T) {
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "missing.txt")
	defer func() { inputPath, part = puzzle.DefaultInput, 0 }()

	cmd, _ := newTestCmd()
	assert.ErrorIs(t, runDays(cmd, []string{"1"}), puzzle.ErrInputMissing)
	assert.ErrorIs(t, runDays(cmd, []string{"20"}), puzzle.ErrUnknownDay)
	assert.Error(t, runDays(cmd, []string{"one"}))

	inputPath = writeFile(t, dir, "bad.txt", "1 2\n3 x")
	assert.ErrorIs(t, runDays(cmd, []string{"9"}), puzzle.ErrBadInput)

	part = 3
	assert.Error(t, runDays(cmd, []string{"1"}))
}

func TestList(t *testing.T) {
	cmd, out := newTestCmd()
	require.NoError(t, listCmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "01  Trebuchet?!\n")
	assert.Contains(t, out.String(), "25  Snowverload\n")
	assert.NotContains(t, out.String(), "\n20  ")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day01.txt", day01Digits)
	writeFile(t, dir, "day25.txt", day25Sample)
	configPath = writeFile(t, dir, "aoc.yaml", "input_dir: "+filepath.Join(dir, "day%02d.txt")+`
workers: 2
answers:
  1: {part1: 142, part2: 142}
  25: {part1: 54}
`)
	defer func() { configPath = "aoc.yaml" }()

	cmd, out := newTestCmd()
	require.NoError(t, runCheck(cmd, nil))
	assert.Equal(t, "day 01 part1: 142 ok\nday 01 part2: 142 ok\nday 25 part1: 54 ok\n", out.String())

	writeFile(t, dir, "aoc.yaml", "input_dir: "+filepath.Join(dir, "day%02d.txt")+`
answers:
  1: {part2: 280}
`)
	cmd, out = newTestCmd()
	assert.ErrorIs(t, runCheck(cmd, nil), errCheckFailed)
	assert.Equal(t, "day 01 part2: 142, want 280\n", out.String())
}

func TestWorkerCount(t *testing.T) {
	cfg := config.Config{Workers: 2}

	cmd, _ := newTestCmd()
	assert.Equal(t, 2, workerCount(cmd, cfg))

	require.NoError(t, cmd.Flags().Set("workers", "3"))
	workers = 3
	defer func() { workers = 0 }()
	assert.Equal(t, 3, workerCount(cmd, cfg))
}

func TestRunDays_ReadsConfig(t *testing.T) {
	dir := t.TempDir()
	inputPath = writeFile(t, dir, "input.txt", day01Digits)
	configPath = writeFile(t, dir, "aoc.yaml", "workers: 2\n")
	defer func() { inputPath, configPath = puzzle.DefaultInput, "aoc.yaml" }()

	cmd, out := newTestCmd()
	require.NoError(t, runDays(cmd, []string{"1"}))
	assert.Equal(t, "part1: 142\npart2: 142\n", out.String())

	writeFile(t, dir, "aoc.yaml", "workers: many\n")
	assert.ErrorIs(t, runDays(cmd, []string{"1"}), config.ErrInvalidConfig)
}
