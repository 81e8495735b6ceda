// Package bestfirst defines configuration options and sentinel errors for
// best-first search.
//
// Options:
//
//	– WithContext(ctx):   cancellation, checked once per frontier pop.
//	– WithNodeLimit(n):   abort with ErrNodeLimit after n expansions (n ≥ 0, 0 = none).
//	– WithOnExpand(fn):   hook on every expansion; returning error aborts.
//
// Errors (sentinel):
//
//	– ErrOptionViolation   an Option received an invalid argument.
//	– ErrZeroHeuristic     AStar was asked to run with core.ZeroHeuristic.
//	– ErrNegativeEstimate  a heuristic returned a negative value.
//	– ErrNodeLimit         the node limit stopped the search.
package bestfirst

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors returned by best-first search.
var (
	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")

	// ErrZeroHeuristic indicates AStar was called with core.ZeroHeuristic;
	// use UniformCost instead.
	ErrZeroHeuristic = errors.New("bestfirst: A* needs a non-zero heuristic variant")

	// ErrNegativeEstimate indicates a heuristic returned a negative estimate.
	ErrNegativeEstimate = errors.New("bestfirst: heuristic estimate is negative")

	// ErrNodeLimit indicates the search hit Options.NodeLimit before finishing.
	ErrNodeLimit = fmt.Errorf("bestfirst: %w", core.ErrNodeLimit)
)

// Options configures the behavior of best-first search.
type Options struct {
	Ctx       context.Context                         // cancellation
	NodeLimit int                                     // max expansions; 0 = unlimited
	OnExpand  func(depth int, pathCost float64) error // per-expansion hook
	err       error
}

// Option represents a functional option for configuring best-first search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no node limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		NodeLimit: 0,
		OnExpand:  nil,
	}
}

// WithContext sets the context checked once per frontier pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNodeLimit aborts the search after n expansions. Stale frontier
// entries that are discarded do not count. n < 0 is an ErrOptionViolation.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithOnExpand installs a hook called on every expansion.
func WithOnExpand(fn func(depth int, pathCost float64) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
