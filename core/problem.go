package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the search strategies.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrUnknownHeuristic is returned by HeuristicProblem.Heuristic for a
	// variant the problem does not implement.
	ErrUnknownHeuristic = errors.New("core: unknown heuristic variant")

	// ErrNodeLimit is wrapped by the strategies when a search is stopped by
	// its node limit before reaching a goal or exhausting the space.
	ErrNodeLimit = errors.New("core: node limit reached")
)

// Variant names a heuristic implemented by a HeuristicProblem.
type Variant string

// ZeroHeuristic is the variant every HeuristicProblem must accept;
// it evaluates to 0 and turns best-first search into uniform-cost search.
const ZeroHeuristic Variant = "h0"

// Problem is the capability set a search strategy needs from a domain.
//
// Actions must return actions in a deterministic order: that order decides
// which of several equally ranked successors is explored first.
// Result reports false when an action is not applicable to s; such actions
// simply produce no child. StepCost must be non-negative.
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoal(s S) bool
	Actions(s S) []A
	Result(s S, a A) (S, bool)
	StepCost(s S, a A) float64
}

// HeuristicProblem is a Problem that evaluates heuristic variants.
// Heuristic returns a non-negative estimate of the remaining cost from s,
// or an error wrapping ErrUnknownHeuristic for an unrecognised variant.
type HeuristicProblem[S comparable, A any] interface {
	Problem[S, A]
	Heuristic(s S, v Variant) (float64, error)
}

// zeroHeuristic lifts a Problem into a HeuristicProblem with only ZeroHeuristic.
type zeroHeuristic[S comparable, A any] struct {
	Problem[S, A]
}

// Heuristic returns 0 for ZeroHeuristic and ErrUnknownHeuristic otherwise.
func (z zeroHeuristic[S, A]) Heuristic(_ S, v Variant) (float64, error) {
	if v != ZeroHeuristic {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, v)
	}

	return 0, nil
}

// WithZeroHeuristic adapts p into a HeuristicProblem whose only variant is
// ZeroHeuristic. Problems that already implement HeuristicProblem are
// returned unchanged.
func WithZeroHeuristic[S comparable, A any](p Problem[S, A]) HeuristicProblem[S, A] {
	if hp, ok := p.(HeuristicProblem[S, A]); ok {
		return hp
	}

	return zeroHeuristic[S, A]{Problem: p}
}
