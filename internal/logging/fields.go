package logging

import (
	"strconv"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/lvsearch/core"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// With applies fields to e in order and returns it for chaining.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}

	return e
}

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Domain adds the problem domain name.
func Domain(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("domain", name)
	}
}

// Algorithm adds the algorithm key.
func Algorithm(key string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("algorithm", key)
	}
}

// Instance adds the instance index and its start state.
func Instance(index int, start string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("instance", index).Str("start", start)
	}
}

// Metrics adds the three search counters.
func Metrics(m core.Metrics) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("nodes_generated", m.NodesGenerated).
			Int("nodes_expanded", m.NodesExpanded).
			Int("max_frontier", m.MaxFrontierSize)
	}
}

// Solution adds whether a solution was found and, if so, its cost and depth.
func Solution(found bool, cost float64, depth int) Field {
	return func(e *bolt.Event) *bolt.Event {
		e = e.Bool("found", found)
		if !found {
			return e
		}
		return e.Str("cost", strconv.FormatFloat(cost, 'g', -1, 64)).Int("depth", depth)
	}
}

// Duration adds a duration field in microseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_us", d.Microseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an integer field with custom key.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}
