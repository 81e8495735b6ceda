// Package wgc implements the wolf-goat-cabbage river crossing as a
// core.Problem.
//
// A farmer must ferry a wolf, a goat and a cabbage across a river in a boat
// that holds the farmer and at most one passenger. Left alone, the wolf eats
// the goat and the goat eats the cabbage. Every crossing costs 1; the
// shortest solution takes 7 crossings.
//
// States encode each item's bank as a binary flag, printed in the order
// farmer, wolf, goat, cabbage: the start is (0,0,0,0) and the goal (1,1,1,1).
package wgc

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Bank is the side of the river an item is on.
type Bank uint8

// Banks.
const (
	Near Bank = iota
	Far
)

// other returns the opposite bank.
func (b Bank) other() Bank { return 1 - b }

// State records the bank of every item.
type State struct {
	Farmer, Wolf, Goat, Cabbage Bank
}

// Start has everything on the near bank.
var Start = State{}

// Goal has everything on the far bank.
var Goal = State{Farmer: Far, Wolf: Far, Goat: Far, Cabbage: Far}

// String renders s as "(f,w,g,c)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", s.Farmer, s.Wolf, s.Goat, s.Cabbage)
}

// Safe reports whether nothing gets eaten in s.
func (s State) Safe() bool {
	if s.Wolf == s.Goat && s.Farmer != s.Wolf {
		return false
	}
	if s.Goat == s.Cabbage && s.Farmer != s.Goat {
		return false
	}

	return true
}

// Action is one crossing of the farmer, optionally with a passenger.
type Action uint8

// Actions in enumeration order.
const (
	MoveWolf Action = iota
	MoveGoat
	MoveCabbage
	MoveAlone
)

// String returns the action label, e.g. "Move Goat".
func (a Action) String() string {
	switch a {
	case MoveWolf:
		return "Move Wolf"
	case MoveGoat:
		return "Move Goat"
	case MoveCabbage:
		return "Move Cabbage"
	case MoveAlone:
		return "Move Alone"
	default:
		return "Move ?"
	}
}

// Problem is a river crossing instance. It holds no mutable state.
type Problem struct {
	initial State
}

var _ core.Problem[State, Action] = Problem{}

// New returns the crossing from Start to Goal.
func New() Problem { return Problem{initial: Start} }

// NewFrom returns the crossing from an arbitrary initial state to Goal.
func NewFrom(initial State) Problem { return Problem{initial: initial} }

// InitialState implements core.Problem.
func (p Problem) InitialState() State { return p.initial }

// IsGoal implements core.Problem.
func (p Problem) IsGoal(s State) bool { return s == Goal }

// Actions lists a crossing for every passenger on the farmer's bank, in the
// order wolf, goat, cabbage, followed by crossing alone. Whether a crossing
// leaves the banks safe is decided by Result.
func (p Problem) Actions(s State) []Action {
	actions := make([]Action, 0, 4)
	if s.Wolf == s.Farmer {
		actions = append(actions, MoveWolf)
	}
	if s.Goat == s.Farmer {
		actions = append(actions, MoveGoat)
	}
	if s.Cabbage == s.Farmer {
		actions = append(actions, MoveCabbage)
	}

	return append(actions, MoveAlone)
}

// Result moves the farmer and the chosen passenger to the other bank.
// It reports false when the passenger is not with the farmer or when the
// crossing leaves an unsafe pair unattended.
func (p Problem) Result(s State, a Action) (State, bool) {
	to := s.Farmer.other()
	next := s
	next.Farmer = to
	switch a {
	case MoveWolf:
		if s.Wolf != s.Farmer {
			return s, false
		}
		next.Wolf = to
	case MoveGoat:
		if s.Goat != s.Farmer {
			return s, false
		}
		next.Goat = to
	case MoveCabbage:
		if s.Cabbage != s.Farmer {
			return s, false
		}
		next.Cabbage = to
	case MoveAlone:
	default:
		return s, false
	}
	if !next.Safe() {
		return s, false
	}

	return next, true
}

// StepCost implements core.Problem; every crossing costs 1.
func (p Problem) StepCost(State, Action) float64 { return 1 }
