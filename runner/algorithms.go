package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/ids"
)

// Algorithm is a plan key selecting a strategy and, for A*, a heuristic.
type Algorithm string

// Algorithm keys, in the order tables list them.
const (
	BFS     Algorithm = "bfs"
	IDS     Algorithm = "ids"
	UCS     Algorithm = "ucs"
	AStarH1 Algorithm = "astar_h1"
	AStarH2 Algorithm = "astar_h2"
)

// ErrUnknownAlgorithm indicates a key outside the registry.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

// errNeedsHeuristic marks an A* request on a problem without heuristics.
var errNeedsHeuristic = errors.New("runner: algorithm needs a heuristic problem")

// algorithmEntry describes one registry entry.
type algorithmEntry struct {
	name    string
	variant core.Variant // empty for uninformed strategies
}

var registry = map[Algorithm]algorithmEntry{
	BFS:     {name: "BFS"},
	IDS:     {name: "IDS"},
	UCS:     {name: "UCS", variant: core.ZeroHeuristic},
	AStarH1: {name: "A* (h1)", variant: eightpuzzle.MisplacedTiles},
	AStarH2: {name: "A* (h2)", variant: eightpuzzle.Manhattan},
}

// Algorithms returns every registered key in table order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, IDS, UCS, AStarH1, AStarH2}
}

// Name returns the display name of a, e.g. "A* (h2)".
func (a Algorithm) Name() string {
	if e, ok := registry[a]; ok {
		return e.name
	}

	return string(a)
}

// Informed reports whether a needs a heuristic beyond the zero heuristic.
func (a Algorithm) Informed() bool {
	e, ok := registry[a]
	return ok && e.variant != "" && e.variant != core.ZeroHeuristic
}

// ParseAlgorithm maps a key to an Algorithm. It also accepts "astar" with a
// heuristic variant, as the solve command does ("astar", "h2" → astar_h2).
func ParseAlgorithm(key string, heuristic core.Variant) (Algorithm, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "astar" {
		if heuristic == "" {
			return "", fmt.Errorf("%w: astar requires a heuristic (h1 or h2)", ErrUnknownAlgorithm)
		}
		key = "astar_" + string(heuristic)
	}
	a := Algorithm(key)
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}

	return a, nil
}

// ParseAlgorithms maps a list of keys; each may itself be comma-separated.
func ParseAlgorithms(keys []string) ([]Algorithm, error) {
	var out []Algorithm
	for _, k := range keys {
		for _, part := range strings.Split(k, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			a, err := ParseAlgorithm(part, "")
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}

	return out, nil
}

// limits carries the per-run knobs shared by every strategy.
type limits struct {
	depthCeiling int
	nodeLimit    int
}

// solve dispatches a to the matching strategy. A* on a problem that does
// not implement core.HeuristicProblem returns errNeedsHeuristic.
func solve[S comparable, A any](ctx context.Context, p core.Problem[S, A], a Algorithm, lim limits) (*core.Result[S, A], error) {
	switch a {
	case BFS:
		return bfs.Search[S, A](p, bfs.WithContext(ctx), bfs.WithNodeLimit(lim.nodeLimit))
	case IDS:
		return ids.Search[S, A](p,
			ids.WithContext(ctx),
			ids.WithDepthCeiling(lim.depthCeiling),
			ids.WithNodeLimit(lim.nodeLimit),
		)
	case UCS:
		return bestfirst.UniformCost[S, A](p, bestfirst.WithContext(ctx), bestfirst.WithNodeLimit(lim.nodeLimit))
	case AStarH1, AStarH2:
		hp, ok := p.(core.HeuristicProblem[S, A])
		if !ok {
			return nil, errNeedsHeuristic
		}
		return bestfirst.AStar[S, A](hp, registry[a].variant,
			bestfirst.WithContext(ctx),
			bestfirst.WithNodeLimit(lim.nodeLimit),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
}
