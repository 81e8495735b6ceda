// Package runner turns a run plan (domain, algorithms, start states) into
// search runs and collects their outcomes for reporting.
//
// Plans come from CLI flags or YAML files:
//
//	domain: 8puzzle
//	algorithms: [bfs, ids, ucs, astar_h1, astar_h2]
//	random_start: true
//	instances: 3
//	shuffles: 40
//	seed: 7
//
// Instances run concurrently, each with its own Problem value; algorithms
// within an instance run in plan order.
package runner

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/ids"
)

// Domain names a problem domain.
type Domain string

// Supported domains.
const (
	DomainWGC         Domain = "wgc"
	DomainEightPuzzle Domain = "8puzzle"
)

// Sentinel errors for plan validation.
var (
	// ErrInvalidPlan wraps every plan validation failure.
	ErrInvalidPlan = errors.New("runner: invalid plan")

	// ErrRandomStartDomain indicates random starts or several instances on
	// a domain with a single fixed start.
	ErrRandomStartDomain = errors.New("runner: random_start and instances > 1 are only supported for 8puzzle")

	// ErrStatesWithRandomStart indicates explicit states combined with random_start.
	ErrStatesWithRandomStart = errors.New("runner: cannot combine explicit states with random_start")

	// ErrStatesDomain indicates explicit states on a domain with a fixed start.
	ErrStatesDomain = errors.New("runner: explicit states are only supported for 8puzzle")

	// ErrNoStates indicates an 8puzzle plan with neither states nor random_start.
	ErrNoStates = errors.New("runner: 8puzzle needs states or random_start")
)

// Plan describes a batch of search runs.
type Plan struct {
	Domain      Domain      `yaml:"domain" validate:"required,oneof=wgc 8puzzle"`
	Algorithms  []Algorithm `yaml:"algorithms" validate:"required,min=1,dive,oneof=bfs ids ucs astar_h1 astar_h2"`
	States      []string    `yaml:"states"`
	RandomStart bool        `yaml:"random_start"`
	// Instances is the number of random starts; ignored without RandomStart.
	Instances int   `yaml:"instances" validate:"gte=0"`
	Shuffles  int   `yaml:"shuffles" validate:"gte=0"`
	Seed      int64 `yaml:"seed"`
	// DepthCeiling bounds IDS; see ids.WithDepthCeiling.
	DepthCeiling int `yaml:"depth_ceiling" validate:"gte=1"`
	// NodeLimit caps expansions per run; 0 disables it.
	NodeLimit int `yaml:"node_limit" validate:"gte=0"`
	// Parallelism is the number of instances run at once.
	Parallelism int `yaml:"parallelism" validate:"gte=1"`
}

// DefaultPlan returns the defaults of the original command line: one
// instance, 100 shuffles, IDS ceiling 100, one worker per CPU.
func DefaultPlan() Plan {
	return Plan{
		Instances:    1,
		Shuffles:     100,
		DepthCeiling: ids.DefaultDepthCeiling,
		Parallelism:  runtime.GOMAXPROCS(0),
	}
}

var validate = validator.New()

// Validate checks field constraints and the cross-field rules.
func (p Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	switch p.Domain {
	case DomainWGC:
		if p.RandomStart || p.Instances > 1 {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, ErrRandomStartDomain)
		}
		if len(p.States) > 0 {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, ErrStatesDomain)
		}
	case DomainEightPuzzle:
		if p.RandomStart && len(p.States) > 0 {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, ErrStatesWithRandomStart)
		}
		if !p.RandomStart && len(p.States) == 0 {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, ErrNoStates)
		}
	}

	return nil
}

// ParsePlan decodes a YAML plan on top of DefaultPlan and validates it.
func ParsePlan(data []byte) (Plan, error) {
	p := DefaultPlan()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("runner: decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// LoadPlan reads and parses the YAML plan at path.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("runner: read plan: %w", err)
	}

	return ParsePlan(data)
}
