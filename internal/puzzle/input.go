package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var (
	// ErrInputMissing is returned when the input file does not exist; it
	// also matches fs.ErrNotExist.
	ErrInputMissing = errors.New("puzzle: input file missing")

	// ErrBadInput marks malformed puzzle text.
	ErrBadInput = errors.New("puzzle: bad input")
)

// DefaultInput is the file each day reads when no path is given.
const DefaultInput = "input.txt"

// ReadInput loads the puzzle text at path with CRLF normalised and trailing
// whitespace removed.
func ReadInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrInputMissing, err)
		}
		return "", fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return Normalize(string(b)), nil
}

// Normalize converts CRLF to LF and trims trailing whitespace.
func Normalize(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), " \t\r\n")
}

// BadInput builds an ErrBadInput error for 1-based line n.
func BadInput(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrBadInput, line, fmt.Sprintf(format, args...))
}

// Lines splits s into lines, dropping trailing empty ones.
func Lines(s string) []string {
	s = strings.TrimRight(Normalize(s), "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks splits s into groups of lines separated by blank lines.
func Blocks(s string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range Lines(s) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Ints parses every whitespace-separated field of s as a signed integer.
func Ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadInput, f)
		}
		out[i] = v
	}

	return out, nil
}

// Int parses s (surrounding space ignored) as a signed integer.
func Int(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadInput, s)
	}

	return v, nil
}

type workersKey struct{}

// WithWorkers returns a context telling parallel days to use n workers.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workersKey{}, n)
}

// Workers returns the worker count carried by ctx, defaulting to GOMAXPROCS.
func Workers(ctx context.Context) int {
	if n, ok := ctx.Value(workersKey{}).(int); ok && n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}
