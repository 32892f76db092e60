// Package config loads the optional aoc.yaml file: where inputs live, how many
// workers parallel days may use, and the known answers `check` compares
// against.
//
//	input_dir: inputs/day%02d.txt
//	workers: 8
//	answers:
//	  1: {part1: 142, part2: 281}
//	  25: {part1: 54}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig marks a config file that parsed but failed validation,
	// or did not parse at all.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// DefaultInputDir is the input path template used without a config file.
const DefaultInputDir = "day%02d/input.txt"

// Expected holds the known answers of one day; nil parts are not checked.
type Expected struct {
	Part1 *int64
	Part2 *int64
}

// Config is the validated configuration.
type Config struct {
	InputDir string
	Workers  int
	Answers  map[int]Expected
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		InputDir: DefaultInputDir,
		Answers:  map[int]Expected{},
	}
}

// InputPath returns the input file for day, expanding a %d-style verb in
// InputDir when present.
func (c Config) InputPath(day int) string {
	if strings.Contains(c.InputDir, "%") {
		return fmt.Sprintf(c.InputDir, day)
	}
	return c.InputDir
}

// Load reads and validates the YAML file at path. A missing file yields
// Default() and no error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b)
}

// Parse decodes YAML bytes into a Config. Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	var dto yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return mapConfig(dto)
}
