// Package eightpuzzle implements the 8-puzzle as a core.HeuristicProblem.
//
// The blank slides Up, Down, Left or Right; every move costs 1. The goal is
// 1,2,3 / 4,5,6 / 7,8,_ and the supported heuristics are:
//
//	h0  zero (uniform-cost behaviour)
//	h1  number of non-blank tiles out of place
//	h2  sum of Manhattan distances of non-blank tiles to their goal cells
//
// Both h1 and h2 are admissible and consistent for this puzzle.
package eightpuzzle

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Heuristic variants understood by Puzzle.
const (
	MisplacedTiles core.Variant = "h1"
	Manhattan      core.Variant = "h2"
)

// Puzzle is an 8-puzzle instance. It is read-only after New and safe for
// concurrent searches.
type Puzzle struct {
	initial State
	goal    State
	// goalIndex[v] is the cell tile v occupies in the goal.
	goalIndex [Cells]int
}

var _ core.HeuristicProblem[State, Move] = (*Puzzle)(nil)

// New returns a puzzle starting from initial with the standard Goal.
// It returns ErrInvalidState if initial is not a permutation of 0..8.
// Reachability of the goal is not checked; see Solvable.
func New(initial State) (*Puzzle, error) {
	if !initial.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, initial)
	}
	p := &Puzzle{initial: initial, goal: Goal}
	for i, v := range p.goal {
		p.goalIndex[v] = i
	}

	return p, nil
}

// InitialState implements core.Problem.
func (p *Puzzle) InitialState() State { return p.initial }

// IsGoal implements core.Problem.
func (p *Puzzle) IsGoal(s State) bool { return s == p.goal }

// Actions lists the blank moves that stay on the board, in the order
// Up, Down, Left, Right.
func (p *Puzzle) Actions(s State) []Move {
	blank := s.BlankIndex()
	if blank < 0 {
		return nil
	}
	moves := make([]Move, 0, 4)
	for _, m := range [...]Move{Up, Down, Left, Right} {
		if _, ok := m.target(blank); ok {
			moves = append(moves, m)
		}
	}

	return moves
}

// Result implements core.Problem.
func (p *Puzzle) Result(s State, m Move) (State, bool) { return m.apply(s) }

// StepCost implements core.Problem; every move costs 1.
func (p *Puzzle) StepCost(State, Move) float64 { return 1 }

// Heuristic implements core.HeuristicProblem for h0, h1 and h2.
func (p *Puzzle) Heuristic(s State, v core.Variant) (float64, error) {
	switch v {
	case core.ZeroHeuristic:
		return 0, nil
	case MisplacedTiles:
		return float64(p.misplaced(s)), nil
	case Manhattan:
		return float64(p.manhattan(s)), nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownHeuristic, v)
	}
}

// misplaced counts non-blank tiles not on their goal cell.
func (p *Puzzle) misplaced(s State) int {
	n := 0
	for i, v := range s {
		if v != Blank && v != p.goal[i] {
			n++
		}
	}

	return n
}

// manhattan sums the row and column distances of every non-blank tile
// from its goal cell.
func (p *Puzzle) manhattan(s State) int {
	d := 0
	for i, v := range s {
		if v == Blank {
			continue
		}
		g := p.goalIndex[v]
		d += abs(i/Side-g/Side) + abs(i%Side-g%Side)
	}

	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
