package runner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/wgc"
)

// DisplayName returns the human label of d used in reports.
func (d Domain) DisplayName() string {
	switch d {
	case DomainWGC:
		return "WGC"
	case DomainEightPuzzle:
		return "8-Puzzle"
	default:
		return string(d)
	}
}

// instance is one start state, ready to run any algorithm. It hides the
// domain's state and action types behind closures.
type instance struct {
	index     int
	start     string
	heuristic bool
	run       func(ctx context.Context, a Algorithm, lim limits) (report.Outcome, error)
}

// view renders the states of a domain for reports.
type view[S comparable] struct {
	state func(S) string
	board func(S) string // optional
}

// newInstance binds p to a run closure that converts typed results into
// report outcomes.
func newInstance[S comparable, A any](index int, p core.Problem[S, A], v view[S]) instance {
	_, informed := p.(core.HeuristicProblem[S, A])

	return instance{
		index:     index,
		start:     v.state(p.InitialState()),
		heuristic: informed,
		run: func(ctx context.Context, a Algorithm, lim limits) (report.Outcome, error) {
			res, err := solve[S, A](ctx, p, a, lim)
			return outcome(a, res, v), err
		},
	}
}

// outcome converts res to its report form. It tolerates a nil res.
func outcome[S comparable, A any](a Algorithm, res *core.Result[S, A], v view[S]) report.Outcome {
	o := report.Outcome{Algorithm: a.Name(), Depth: -1}
	if res == nil {
		return o
	}
	o.Metrics = res.Metrics
	if !res.Found() {
		return o
	}

	o.Found = true
	o.Cost = res.Cost()
	o.Depth = res.Depth()
	for _, st := range res.Solution.Path() {
		step := report.Step{
			Action: fmt.Sprint(st.Action),
			From:   v.state(st.From),
			To:     v.state(st.To),
		}
		if v.board != nil {
			step.FromBoard = v.board(st.From)
			step.ToBoard = v.board(st.To)
		}
		o.Path = append(o.Path, step)
	}

	return o
}

var (
	wgcView    = view[wgc.State]{state: wgc.State.String}
	puzzleView = view[eightpuzzle.State]{state: eightpuzzle.State.String, board: eightpuzzle.Board}
)

// instances builds the start states named by p.
func (p Plan) instances() ([]instance, error) {
	switch p.Domain {
	case DomainWGC:
		return []instance{newInstance[wgc.State, wgc.Action](0, wgc.New(), wgcView)}, nil

	case DomainEightPuzzle:
		var starts []eightpuzzle.State
		if p.RandomStart {
			n := p.Instances
			if n < 1 {
				n = 1
			}
			generated, err := eightpuzzle.GenerateUnique(p.Seed, n, p.Shuffles)
			if err != nil {
				return nil, fmt.Errorf("runner: generate starts: %w", err)
			}
			starts = generated
		} else {
			for _, text := range p.States {
				s, err := eightpuzzle.ParseState(text)
				if err != nil {
					return nil, fmt.Errorf("runner: %w", err)
				}
				starts = append(starts, s)
			}
		}

		out := make([]instance, 0, len(starts))
		for i, s := range starts {
			puzzle, err := eightpuzzle.New(s)
			if err != nil {
				return nil, fmt.Errorf("runner: %w", err)
			}
			out = append(out, newInstance[eightpuzzle.State, eightpuzzle.Move](i, puzzle, puzzleView))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unknown domain %q", ErrInvalidPlan, p.Domain)
	}
}
