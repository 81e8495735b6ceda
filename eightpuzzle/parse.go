package eightpuzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseState parses nine comma-separated integers, e.g. "1,2,3,4,5,0,7,8,6".
// Surrounding parentheses and spaces are accepted. The result must be a
// permutation of 0..8.
func ParseState(text string) (State, error) {
	var s State
	trimmed := strings.Trim(strings.TrimSpace(text), "()")
	fields := strings.Split(trimmed, ",")
	if len(fields) != Cells {
		return s, fmt.Errorf("%w: want %d values, got %d in %q", ErrParseState, Cells, len(fields), text)
	}
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return s, fmt.Errorf("%w: %q: %v", ErrParseState, f, err)
		}
		if v < 0 || v >= Cells {
			return s, fmt.Errorf("%w: value %d out of range", ErrInvalidState, v)
		}
		s[i] = uint8(v)
	}
	if !s.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidState, text)
	}

	return s, nil
}

// Board renders s as three framed rows, the blank shown as a space:
//
//	│ 1 2 3 │
//	│ 4 5   │
//	│ 7 8 6 │
func Board(s State) string {
	var b strings.Builder
	for r := 0; r < Side; r++ {
		b.WriteString(" │")
		for c := 0; c < Side; c++ {
			v := s[r*Side+c]
			b.WriteByte(' ')
			if v == Blank {
				b.WriteByte(' ')
			} else {
				b.WriteString(strconv.Itoa(int(v)))
			}
		}
		b.WriteString(" │\n")
	}

	return b.String()
}

// Solvable reports whether the goal is reachable from s. For an odd board
// width that holds exactly when the number of inversions among the
// non-blank tiles is even.
func Solvable(s State) bool {
	if !s.Valid() {
		return false
	}
	inversions := 0
	for i := 0; i < Cells; i++ {
		if s[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if s[j] != Blank && s[i] > s[j] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}
