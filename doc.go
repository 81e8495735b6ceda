// Package lvsearch is a small laboratory for classical state-space search:
// uninformed and informed strategies over a generic problem interface, two
// toy domains, and tooling to compare the strategies side by side.
//
// What is in the box?
//
//	A generic, single-threaded search toolkit that brings together:
//		• Problem abstraction: states, ordered actions, transitions that may
//		  reject an action, step costs, optional heuristics
//		• Breadth-first search with an early goal test
//		• Iterative deepening with depth-aware duplicate handling
//		• Best-first search: uniform-cost and A* on one lazy min-heap
//		• Domains: Wolf-Goat-Cabbage and the 8-puzzle (h1, h2)
//		• Reports: per-run console paths and comparison tables
//		• A runner for YAML plans and a CLI, lvsearch
//
// Layout:
//
//	core/         Problem, HeuristicProblem, Node, Metrics, Result
//	bfs/          breadth-first search
//	ids/          iterative deepening and single depth-limited passes
//	bestfirst/    uniform-cost search and A*
//	eightpuzzle/  3×3 sliding-tile domain, heuristics, instance generator
//	wgc/          wolf-goat-cabbage river crossing
//	report/       console report and lipgloss tables
//	runner/       run plans, algorithm registry, parallel instances
//	cmd/lvsearch  command-line entry point
//
// Every strategy returns the goal node (or nil) together with the number of
// nodes generated, nodes expanded and the peak frontier size, so runs on the
// same start state can be compared directly:
//
//	lvsearch compare 8puzzle --state "4,1,3,7,2,5,8,0,6"
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
