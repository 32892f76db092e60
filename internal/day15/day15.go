// Package day15 runs the HASH algorithm over the initialisation sequence
// and, for part 2, the HASHMAP box procedure.
package day15

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 15,
		Title:  "Lens Library",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			var sum int64
			for _, s := range Steps(in) {
				sum += int64(Hash(s))
			}
			return puzzle.Answer(sum), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			ops, err := Parse(in)
			if err != nil {
				return 0, err
			}
			var b Boxes
			for _, op := range ops {
				b.Apply(op)
			}
			return puzzle.Answer(b.FocusingPower()), nil
		},
	})
}

// Hash maps s onto 0..255.
func Hash(s string) uint8 {
	var h uint8
	for i := 0; i < len(s); i++ {
		h = (h + s[i]) * 17
	}

	return h
}

// Steps splits the comma-separated sequence, ignoring newlines.
func Steps(in string) []string {
	in = strings.NewReplacer("\r", "", "\n", "").Replace(in)
	in = strings.TrimSpace(in)
	if in == "" {
		return nil
	}

	return strings.Split(in, ",")
}

// Op is either "label-" (Focal 0, Remove) or "label=focal".
type Op struct {
	Label  string
	Focal  int
	Remove bool
}

// Parse reads every step as an Op.
func Parse(in string) ([]Op, error) {
	steps := Steps(in)
	out := make([]Op, 0, len(steps))
	for i, s := range steps {
		if label, ok := strings.CutSuffix(s, "-"); ok && label != "" {
			out = append(out, Op{Label: label, Remove: true})
			continue
		}
		label, focal, ok := strings.Cut(s, "=")
		n, err := strconv.Atoi(focal)
		if !ok || label == "" || err != nil || n < 1 || n > 9 {
			return nil, puzzle.BadInput(1, "step %d: bad operation %q", i+1, s)
		}
		out = append(out, Op{Label: label, Focal: n})
	}

	return out, nil
}

type lens struct {
	label string
	focal int
}

// Boxes holds 256 ordered lens slots.
type Boxes [256][]lens

// Apply removes or inserts/replaces the lens in box Hash(op.Label).
func (b *Boxes) Apply(op Op) {
	box := &b[Hash(op.Label)]
	i := slices.IndexFunc(*box, func(l lens) bool { return l.label == op.Label })
	switch {
	case op.Remove && i >= 0:
		*box = slices.Delete(*box, i, i+1)
	case op.Remove:
	case i >= 0:
		(*box)[i].focal = op.Focal
	default:
		*box = append(*box, lens{op.Label, op.Focal})
	}
}

// FocusingPower sums (box+1) * (slot+1) * focal over every lens.
func (b *Boxes) FocusingPower() int64 {
	var sum int64
	for n, box := range b {
		for slot, l := range box {
			sum += int64((n + 1) * (slot + 1) * l.focal)
		}
	}

	return sum
}
