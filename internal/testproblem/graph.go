// Package testproblem provides a small explicit-graph Problem for tests.
//
// States are vertex names and actions are the names of target vertices, so
// a solution path reads as the list of vertices visited. Edges keep their
// insertion order, which makes expansion order obvious from the fixture.
package testproblem

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// edge is one outgoing arc.
type edge struct {
	to      string
	cost    float64
	blocked bool
}

// Graph is a core.HeuristicProblem over named vertices.
type Graph struct {
	start      string
	goals      map[string]bool
	adj        map[string][]edge
	heuristics map[core.Variant]map[string]float64

	// Calls counts Actions invocations, useful to check work done.
	Calls int
}

// New returns a graph searching from start to any of goals.
func New(start string, goals ...string) *Graph {
	g := &Graph{
		start:      start,
		goals:      make(map[string]bool, len(goals)),
		adj:        make(map[string][]edge),
		heuristics: make(map[core.Variant]map[string]float64),
	}
	for _, v := range goals {
		g.goals[v] = true
	}

	return g
}

// Edge adds a directed arc from→to with the given step cost.
func (g *Graph) Edge(from, to string, cost float64) *Graph {
	g.adj[from] = append(g.adj[from], edge{to: to, cost: cost})
	return g
}

// Blocked adds an arc that Actions lists but Result rejects.
func (g *Graph) Blocked(from, to string) *Graph {
	g.adj[from] = append(g.adj[from], edge{to: to, cost: 1, blocked: true})
	return g
}

// WithHeuristic registers variant v with the per-vertex estimates h.
// Vertices missing from h evaluate to 0.
func (g *Graph) WithHeuristic(v core.Variant, h map[string]float64) *Graph {
	g.heuristics[v] = h
	return g
}

// InitialState implements core.Problem.
func (g *Graph) InitialState() string { return g.start }

// IsGoal implements core.Problem.
func (g *Graph) IsGoal(s string) bool { return g.goals[s] }

// Actions implements core.Problem.
func (g *Graph) Actions(s string) []string {
	g.Calls++
	out := make([]string, 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, e.to)
	}

	return out
}

// Result implements core.Problem.
func (g *Graph) Result(s, a string) (string, bool) {
	for _, e := range g.adj[s] {
		if e.to == a {
			return a, !e.blocked
		}
	}

	return "", false
}

// StepCost implements core.Problem.
func (g *Graph) StepCost(s, a string) float64 {
	for _, e := range g.adj[s] {
		if e.to == a {
			return e.cost
		}
	}

	return 0
}

// Heuristic implements core.HeuristicProblem.
func (g *Graph) Heuristic(s string, v core.Variant) (float64, error) {
	if v == core.ZeroHeuristic {
		return 0, nil
	}
	h, ok := g.heuristics[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownHeuristic, v)
	}

	return h[s], nil
}
