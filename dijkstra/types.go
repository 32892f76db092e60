// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit state space.
//
// Instead of a materialised graph the caller supplies a start state, a
// successor function and a goal predicate. States are any comparable type,
// which lets a search carry extra information per node (heading, run length,
// keys held) without building the product graph up front.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the states actually reached.
//   - Space: O(V + E) with the lazy decrease-key heap.
//
// Options:
//
//   - WithContext:    cancellation, checked once per expanded state.
//   - WithMaxCost:    states costlier than the cap are never expanded.
//   - WithReturnPath: record predecessors and return the path to the goal.
//
// Errors (sentinel):
//
//   - ErrNilSuccessors if successors is nil.
//   - ErrNilGoal       if goal is nil.
//   - ErrNegativeCost  if a successor reports a negative step cost.
//   - ErrNoPath        if no goal state is reachable within MaxCost.
//   - ErrBadMaxCost    if WithMaxCost received a negative cap.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNegativeCost indicates a successor returned a step with negative cost.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrNoPath indicates that the goal could not be reached.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Step is one outgoing transition: the state it leads to and what it costs.
type Step[S comparable] struct {
	State S
	Cost  int64
}

// Result describes the cheapest route found to a goal state.
//
// Path is populated only with WithReturnPath and runs from start to Goal
// inclusive. Expanded counts the states popped and relaxed.
type Result[S comparable] struct {
	Goal     S
	Cost     int64
	Path     []S
	Expanded int
}

// Options configures the behavior of Search.
type Options struct {
	Ctx        context.Context // cancellation; defaults to context.Background()
	ReturnPath bool            // whether to reconstruct the path
	MaxCost    int64           // states with cost above this are not expanded

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithContext sets the context checked between expansions. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor tracking and path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the cost of expanded states. A negative cap makes Search
// fail with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxCost
			return
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no cost cap and no path tracking.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt64,
	}
}
