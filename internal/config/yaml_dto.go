package config

import "fmt"

type yamlConfig struct {
	InputDir string               `yaml:"input_dir"`
	Workers  int                  `yaml:"workers"`
	Answers  map[int]yamlExpected `yaml:"answers"`
}

type yamlExpected struct {
	Part1 *int64 `yaml:"part1"`
	Part2 *int64 `yaml:"part2"`
}

func mapConfig(dto yamlConfig) (Config, error) {
	cfg := Default()
	if dto.InputDir != "" {
		cfg.InputDir = dto.InputDir
	}
	if dto.Workers < 0 {
		return Config{}, fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, dto.Workers)
	}
	cfg.Workers = dto.Workers
	for day, exp := range dto.Answers {
		if day < 1 || day > 25 {
			return Config{}, fmt.Errorf("%w: answers: day %d out of range 1..25", ErrInvalidConfig, day)
		}
		cfg.Answers[day] = Expected{Part1: exp.Part1, Part2: exp.Part2}
	}

	return cfg, nil
}
