// Package eightpuzzle - random instance generation.
//
// Instances are produced by walking the blank randomly away from the goal,
// so every generated state is solvable. All randomness flows from an
// explicit *rand.Rand or seed; nothing here reads the clock.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package eightpuzzle

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// attemptsPerInstance bounds the retries GenerateUnique makes per wanted
// instance before giving up with ErrTooManyInstances.
const attemptsPerInstance = 64

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Generate applies shuffles uniformly chosen legal blank moves to the goal.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(shuffles).
func Generate(rng *rand.Rand, shuffles int) (State, error) {
	if shuffles < 0 {
		return State{}, fmt.Errorf("%w: %d", ErrBadShuffles, shuffles)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	s := Goal
	var legal []Move
	for i := 0; i < shuffles; i++ {
		legal = legal[:0]
		blank := s.BlankIndex()
		for _, m := range [...]Move{Up, Down, Left, Right} {
			if _, ok := m.target(blank); ok {
				legal = append(legal, m)
			}
		}
		s, _ = legal[rng.Intn(len(legal))].apply(s)
	}

	return s, nil
}

// GenerateUnique returns n distinct instances produced by Generate from a
// stream seeded with seed. The same (seed, n, shuffles) yields the same
// instances in the same order.
//
// Few shuffles admit few distinct states (zero shuffles admit only the
// goal), so the generator gives up with ErrTooManyInstances after a bounded
// number of attempts.
func GenerateUnique(seed int64, n, shuffles int) ([]State, error) {
	if n <= 0 {
		return nil, nil
	}
	rng := rngFromSeed(seed)
	seen := make(map[State]struct{}, n)
	out := make([]State, 0, n)
	for attempts := 0; len(out) < n; attempts++ {
		if attempts >= n*attemptsPerInstance {
			return out, fmt.Errorf("%w: got %d of %d with %d shuffles", ErrTooManyInstances, len(out), n, shuffles)
		}
		s, err := Generate(rng, shuffles)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out, nil
}
