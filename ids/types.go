// Package ids defines options and errors for iterative-deepening search,
// including cancellation, per-expansion and per-pass hooks, the depth
// ceiling, and an expansion budget.
package ids

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// DefaultDepthCeiling is the number of depth-limited passes Search runs
// before reporting no solution: limits 0 through 99.
const DefaultDepthCeiling = 100

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ids: invalid option supplied")

	// ErrNegativeLimit is returned by DLS for a negative depth limit.
	ErrNegativeLimit = errors.New("ids: depth limit cannot be negative")

	// ErrNodeLimit is returned when the search stops at Options.NodeLimit
	// expansions, counted across all passes.
	ErrNodeLimit = fmt.Errorf("ids: %w", core.ErrNodeLimit)
)

// Option configures optional behavior of IDS and DLS.
type Option func(*Options)

// Options holds configurable parameters for iterative deepening.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// DepthCeiling is the number of passes Search runs (limits 0..DepthCeiling-1).
	// It must be positive. Default is DefaultDepthCeiling.
	DepthCeiling int

	// NodeLimit, if > 0, aborts after this many expansions summed over passes.
	NodeLimit int

	// OnExpand, if non-nil, is invoked for every expanded node.
	// Returning an error aborts the search with that error.
	OnExpand func(depth int, pathCost float64) error

	// OnPass, if non-nil, is invoked after every completed depth-limited
	// pass with the pass limit and that pass's own metrics.
	OnPass func(limit int, m core.Metrics)

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - DepthCeiling = DefaultDepthCeiling
//   - no node limit
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		DepthCeiling: DefaultDepthCeiling,
		NodeLimit:    0,
		OnExpand:     nil,
		OnPass:       nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthCeiling sets how many passes Search runs. A ceiling of n tries
// limits 0..n-1. Non-positive values are an ErrOptionViolation.
func WithDepthCeiling(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: DepthCeiling must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.DepthCeiling = n
	}
}

// WithNodeLimit stops the search after n expansions across all passes.
// n == 0 disables the limit; n < 0 is an ErrOptionViolation.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithOnExpand installs fn as the per-expansion hook.
func WithOnExpand(fn func(depth int, pathCost float64) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnPass installs fn as the per-pass hook.
func WithOnPass(fn func(limit int, m core.Metrics)) Option {
	return func(o *Options) {
		o.OnPass = fn
	}
}
