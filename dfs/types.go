// Package dfs implements exhaustive depth-first search over simple paths of a
// core.Graph. Its main entry point, LongestPath, backtracks through every
// simple path between two vertices and keeps the heaviest one; this is
// exponential in general and meant for small, compressed graphs
// (tens of vertices).
//
// Complexity:
//
//   - Time:   O(number of simple paths × average degree).
//   - Memory: O(V) for the recursion stack and visited flags.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start vertex is missing.
//   - ErrTargetVertexNotFound if the target vertex is missing.
//   - ErrNoPath               if no simple path connects them.
//   - context.Canceled        if ctx is done.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the target vertex does not exist.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrNoPath indicates the target cannot be reached from the start.
	ErrNoPath = errors.New("dfs: no path between vertices")
)

// Option configures optional behavior of the search.
type Option func(*Options)

// Options holds configurable parameters for path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// CheckEvery sets how many recursion steps pass between context checks.
	CheckEvery int
}

// DefaultOptions returns Options with a background context and a context
// check every 4096 steps.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		CheckEvery: 4096,
	}
}

// WithContext sets the Context for the search. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCheckEvery sets how often the walker polls the context. Values below 1
// mean every step.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		o.CheckEvery = n
	}
}
