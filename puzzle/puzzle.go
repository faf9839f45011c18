// Package puzzle runs daily puzzle solutions and prints their answers.
//
//	runner := puzzle.NewRunner()
//	err := runner.RunAll(ctx,
//		puzzle.Solution{Year: 2017, Day: 1, Run: day01},
//		puzzle.Solution{Year: 2017, Day: 2, Run: day02},
//	)
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	errors2 "github.com/amp-labs/aoc-common/errors"
	"github.com/amp-labs/aoc-common/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoSolution is returned when a Solution has no Run function.
var ErrNoSolution = errors.New("solution has no run function")

// Solution is one day's puzzle. Run returns the answer, which is printed with
// the %v verb.
type Solution struct {
	Year int
	Day  int
	Name string
	Run  func(ctx context.Context) (any, error)
}

func (s Solution) String() string {
	if s.Name != "" {
		return fmt.Sprintf("day %d of year %d (%s)", s.Day, s.Year, s.Name)
	}

	return fmt.Sprintf("day %d of year %d", s.Day, s.Year)
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where answers are printed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger used for run diagnostics. Without it the
// context logger from logger.Get is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithTracerProvider sets where solve spans are sent. Defaults to the global
// provider from otel.GetTracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) {
		r.tracer = tp.Tracer("puzzle")
	}
}

// Runner executes solutions one at a time.
type Runner struct {
	out    io.Writer
	log    *slog.Logger
	tracer trace.Tracer
}

// NewRunner returns a Runner printing to os.Stdout, logging through the
// context logger and tracing through the global otel provider unless
// overridden by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{out: os.Stdout}

	for _, opt := range opts {
		opt(r)
	}

	if r.tracer == nil {
		r.tracer = otel.Tracer("puzzle")
	}

	return r
}

// Run prints the banner for s, runs it and prints the answer followed by a
// blank line. A panic inside s.Run is recovered and returned as an error
// matching errors.ErrPanicRecovery. Every run that starts is counted in
// puzzle_runs_total by outcome and traced as a "puzzle.solve" span.
func (r *Runner) Run(ctx context.Context, s Solution) error {
	if s.Run == nil {
		return fmt.Errorf("%w: %s", ErrNoSolution, s)
	}

	if r.log != nil {
		ctx = logger.WithLogger(ctx, r.log)
	}

	runID := uuid.New().String()

	ctx = logger.With(ctx,
		"year", s.Year,
		"day", s.Day,
		"run_id", runID)

	log := logger.Get(ctx)

	if _, err := fmt.Fprintf(r.out, "Running day %d of year %d:\n", s.Day, s.Year); err != nil {
		return err
	}

	log.Debug("running solution", "name", s.Name)

	start := time.Now()
	answer, err := r.solveTraced(ctx, s, runID)
	elapsed := time.Since(start)

	recordRun(s, outcomeOf(err), elapsed)

	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}

	log.Info("solution finished", "elapsed", elapsed)

	_, err = fmt.Fprintf(r.out, "%v\n\n", answer)

	return err
}

// RunAll runs every solution in order. Failures do not stop later solutions;
// they are joined into the returned error. A cancelled context stops the
// loop before the next solution starts.
func (r *Runner) RunAll(ctx context.Context, solutions ...Solution) error {
	errs := &errors2.Collection{}

	for _, s := range solutions {
		if err := ctx.Err(); err != nil {
			errs.Add(err)

			break
		}

		errs.Add(r.Run(ctx, s))
	}

	return errs.GetError()
}

// solveTraced runs s inside a "puzzle.solve" span carrying the run attributes.
func (r *Runner) solveTraced(ctx context.Context, s Solution, runID string) (any, error) {
	ctx, span := r.tracer.Start(ctx, "puzzle.solve", trace.WithAttributes(
		attribute.Int("year", s.Year),
		attribute.Int("day", s.Day),
		attribute.String("name", s.Name),
		attribute.String("run_id", runID),
	))
	defer span.End()

	answer, err := solve(ctx, s)
	if err != nil {
		if errors.Is(err, errors2.ErrPanicRecovery) {
			span.SetAttributes(attribute.Int64("panic", 1))
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetStatus(codes.Ok, "ok")

	return answer, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, errors2.ErrPanicRecovery):
		return outcomePanic
	default:
		return outcomeError
	}
}

func solve(ctx context.Context, s Solution) (answer any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = panicError(rec, debug.Stack())
		}
	}()

	return s.Run(ctx)
}

// panicError converts a recovered panic value into an error wrapping
// errors.ErrPanicRecovery. Error values stay reachable through errors.Is.
func panicError(rec any, stack []byte) error {
	var cause error

	if err, ok := rec.(error); ok {
		cause = fmt.Errorf("%w: %w", errors2.ErrPanicRecovery, err)
	} else {
		cause = fmt.Errorf("%w: %v", errors2.ErrPanicRecovery, rec)
	}

	if len(stack) == 0 {
		return cause
	}

	return fmt.Errorf("%w\nstack trace:\n%s", cause, stack)
}
