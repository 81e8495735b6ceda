// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Problem.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNodeLimit is returned when the search stops at Options.NodeLimit expansions.
	ErrNodeLimit = fmt.Errorf("bfs: %w", core.ErrNodeLimit)
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative node limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// NodeLimit, if > 0, aborts the search after this many expansions.
	// A value of 0 disables the limit.
	NodeLimit int

	// OnExpand is called for every expanded node with its depth and path cost.
	// If it returns an error, BFS aborts and propagates that error.
	OnExpand func(depth int, pathCost float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no node limit (NodeLimit == 0)
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		NodeLimit: 0,
		OnExpand:  func(int, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNodeLimit stops the search after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithOnExpand registers a callback to run on every expansion; returning
// an error from this callback stops the search.
func WithOnExpand(fn func(depth int, pathCost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
