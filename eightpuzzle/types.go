// Package eightpuzzle defines the 3×3 sliding-tile domain: states, moves,
// sentinel errors, and the board geometry shared by the problem,
// heuristics, and generator.
package eightpuzzle

import (
	"errors"
	"strconv"
	"strings"
)

// Board geometry.
const (
	// Side is the number of rows and columns.
	Side = 3
	// Cells is the number of board positions.
	Cells = Side * Side
	// Blank is the value that encodes the empty cell.
	Blank uint8 = 0
)

// Sentinel errors for eightpuzzle operations.
var (
	// ErrInvalidState indicates a state that is not a permutation of 0..8.
	ErrInvalidState = errors.New("eightpuzzle: state must be a permutation of 0..8")

	// ErrParseState indicates a state string that cannot be parsed.
	ErrParseState = errors.New("eightpuzzle: cannot parse state")

	// ErrBadShuffles indicates a negative shuffle count.
	ErrBadShuffles = errors.New("eightpuzzle: shuffles must be non-negative")

	// ErrTooManyInstances indicates more distinct instances were requested
	// than the generator could produce.
	ErrTooManyInstances = errors.New("eightpuzzle: cannot generate that many distinct instances")
)

// State is a board in row-major order; Blank marks the empty cell.
type State [Cells]uint8

// Goal is the solved configuration.
var Goal = State{1, 2, 3, 4, 5, 6, 7, 8, 0}

// BlankIndex returns the position of the empty cell, or -1 if absent.
func (s State) BlankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}

	return -1
}

// Valid reports whether s holds every value 0..8 exactly once.
func (s State) Valid() bool {
	var seen [Cells]bool
	for _, v := range s {
		if int(v) >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// String renders s as "(1,2,3,4,5,6,7,8,0)".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(')')

	return b.String()
}

// Move slides the blank one cell in a direction.
type Move uint8

// Moves in enumeration order.
const (
	Up Move = iota
	Down
	Left
	Right
)

// String returns the move label, e.g. "Move Up".
func (m Move) String() string {
	switch m {
	case Up:
		return "Move Up"
	case Down:
		return "Move Down"
	case Left:
		return "Move Left"
	case Right:
		return "Move Right"
	default:
		return "Move ?"
	}
}

// target returns the cell the blank moves to from index blank,
// or false when the move would leave the board.
func (m Move) target(blank int) (int, bool) {
	row, col := blank/Side, blank%Side
	switch m {
	case Up:
		return blank - Side, row > 0
	case Down:
		return blank + Side, row < Side-1
	case Left:
		return blank - 1, col > 0
	case Right:
		return blank + 1, col < Side-1
	default:
		return 0, false
	}
}

// apply returns the state reached by moving the blank of s, or false if m
// is not applicable.
func (m Move) apply(s State) (State, bool) {
	blank := s.BlankIndex()
	if blank < 0 {
		return s, false
	}
	swap, ok := m.target(blank)
	if !ok {
		return s, false
	}
	s[blank], s[swap] = s[swap], s[blank]

	return s, true
}
