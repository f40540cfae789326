package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/drblury/selftest/probe"
)

const defaultTimeout = 2 * time.Second

// Option follows the functional options pattern used by New to configure
// optional collaborators.
type Option func(*Runner)

// Runner is the aggregate driver: it invokes every selected probe exactly
// once, sequentially, and folds the flags into a single exit status. Probes
// are independent, so the order of invocation carries no meaning; names are
// processed lexically for stable reports.
type Runner struct {
	reg     *probe.Registry
	log     *slog.Logger
	timeout time.Duration
	prefix  string
}

// New constructs a Runner over the given export table. By default every
// registered probe is selected and the whole run shares a two second budget.
func New(reg *probe.Registry, opts ...Option) *Runner {
	r := &Runner{
		reg:     reg,
		log:     slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithTimeout adjusts the time budget shared by all probes in one run.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLogger injects a custom slog logger for per-probe reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithPrefix narrows the run to export names starting with prefix, for
// example probe.TestPrefix to select only test probes.
func WithPrefix(prefix string) Option {
	return func(r *Runner) {
		r.prefix = prefix
	}
}

// Run invokes each selected probe once and returns the collected outcomes.
// A failing probe never aborts the run; every probe is always invoked.
func (r *Runner) Run(ctx context.Context) Summary {
	if ctx == nil {
		ctx = context.Background()
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	names := r.reg.NamesWithPrefix(r.prefix)
	summary := Summary{Probes: make([]Outcome, 0, len(names))}

	for _, name := range names {
		outcome := r.invoke(runCtx, name)
		summary.Probes = append(summary.Probes, outcome)
		summary.Total++
		if outcome.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}

		r.log.Debug("probe finished", "name", outcome.Name, "flag", outcome.Flag, "detail", outcome.Detail)
	}

	return summary
}

func (r *Runner) invoke(ctx context.Context, name string) Outcome {
	fn, err := r.reg.Lookup(name)
	if err != nil {
		return Outcome{Name: name, Detail: err.Error()}
	}

	if err := fn(ctx); err != nil {
		detail := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			detail = fmt.Sprintf("timed out after %s", r.timeout)
		}
		return Outcome{Name: name, Detail: detail}
	}

	return Outcome{Name: name, Flag: 1, Passed: true}
}
