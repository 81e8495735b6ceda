package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/report"
)

// Runner executes a validated Plan.
type Runner struct {
	plan   Plan
	logger *bolt.Logger
	newID  func() string
	now    func() time.Time
}

// New validates plan and returns a Runner logging to logger. A nil logger
// discards output.
func New(plan Plan, logger *bolt.Logger) (*Runner, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Runner{plan: plan, logger: logger, newID: uuid.NewString, now: time.Now}, nil
}

// Run executes every algorithm of the plan on every start state and returns
// one report.Instance per start, in start order with outcomes in algorithm
// order.
//
// Instances run concurrently, at most Plan.Parallelism at a time. A* keys on
// a domain without heuristics are skipped with a warning. A run stopped by
// the node limit is recorded as an aborted outcome. Any other error cancels
// the remaining work and is returned.
func (r *Runner) Run(ctx context.Context) ([]report.Instance, error) {
	insts, err := r.plan.instances()
	if err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("domain", string(r.plan.Domain)).
		Int("instances", len(insts)).
		Int("algorithms", len(r.plan.Algorithms)).
		Int("parallelism", r.plan.Parallelism).
		Msg("starting plan")

	out := make([]report.Instance, len(insts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.plan.Parallelism)
	for i, inst := range insts {
		g.Go(func() error {
			res, err := r.runInstance(gctx, inst)
			out[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Run validates plan and executes it in one call.
func Run(ctx context.Context, plan Plan, logger *bolt.Logger) ([]report.Instance, error) {
	r, err := New(plan, logger)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx)
}

func (r *Runner) runInstance(ctx context.Context, inst instance) (report.Instance, error) {
	res := report.Instance{
		Index:  inst.index,
		Domain: r.plan.Domain.DisplayName(),
		Start:  inst.start,
	}
	lim := limits{depthCeiling: r.plan.DepthCeiling, nodeLimit: r.plan.NodeLimit}

	for _, a := range r.plan.Algorithms {
		if a.Informed() && !inst.heuristic {
			logging.With(r.logger.Warn(),
				logging.Domain(string(r.plan.Domain)),
				logging.Algorithm(string(a)),
				logging.Instance(inst.index, inst.start),
			).Msg("skipping heuristic algorithm: domain has no heuristics")
			continue
		}

		id := r.newID()
		started := r.now()
		o, err := inst.run(ctx, a, lim)
		o.RunID = id
		o.Elapsed = r.now().Sub(started)

		fields := []logging.Field{
			logging.RunID(id),
			logging.Domain(string(r.plan.Domain)),
			logging.Algorithm(string(a)),
			logging.Instance(inst.index, inst.start),
			logging.Solution(o.Found, o.Cost, o.Depth),
			logging.Metrics(o.Metrics),
			logging.Duration(o.Elapsed),
		}

		switch {
		case err == nil:
			logging.With(r.logger.Info(), fields...).Msg("run finished")
		case errors.Is(err, core.ErrNodeLimit):
			o.Aborted = err.Error()
			logging.With(r.logger.Warn(), append(fields, logging.ErrorField(err))...).Msg("run aborted")
		default:
			logging.With(r.logger.Error(), append(fields, logging.ErrorField(err))...).Msg("run failed")
			return res, fmt.Errorf("runner: %s on instance %d: %w", a, inst.index, err)
		}
		res.Outcomes = append(res.Outcomes, o)
	}

	return res, nil
}
