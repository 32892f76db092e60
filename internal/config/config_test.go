package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/config"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "aoc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "day07/input.txt", cfg.InputPath(7))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	body := `
input_dir: inputs/%02d.txt
workers: 4
answers:
  1: {part1: 142, part2: 281}
  25:
    part1: 54
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "inputs/03.txt", cfg.InputPath(3))
	assert.Equal(t, 4, cfg.Workers)
	require.Contains(t, cfg.Answers, 25)
	require.NotNil(t, cfg.Answers[25].Part1)
	assert.Equal(t, int64(54), *cfg.Answers[25].Part1)
	assert.Nil(t, cfg.Answers[25].Part2)
	assert.Equal(t, int64(281), *cfg.Answers[1].Part2)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "inputs: x\n",
		"bad yaml":      "workers: [\n",
		"negative":      "workers: -1\n",
		"day too large": "answers:\n  26: {part1: 1}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultInputDir, cfg.InputDir)
	assert.Equal(t, "fixed.txt", config.Config{InputDir: "fixed.txt"}.InputPath(9))
}
