// Package runner executes puzzle parts with bounded concurrency, a per-part
// timeout and an optional answers ledger.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
	"aoc2020/internal/store"
)

// ErrTimeout is returned for a part that outlived its timeout.
var ErrTimeout = errors.New("part timed out")

// Task is one (day, part) to solve.
type Task struct {
	Day  int
	Part puzzle.Part
}

func (t Task) String() string {
	return fmt.Sprintf("day %d part %d", t.Day, t.Part)
}

// Result is the outcome of one task. Err, when set, always starts with the
// task, e.g. "day 3 part 1: ...".
type Result struct {
	Task
	Answer    string
	Duration  time.Duration
	InputHash string
	Err       error
	// Previous is the differing answer last recorded for the same input,
	// empty when there was none or it matched.
	Previous string
}

// Regressed reports whether the answer changed for an unchanged input.
func (r Result) Regressed() bool { return r.Previous != "" }

// InputLoader returns the raw input of a day.
type InputLoader func(day int) (string, error)

// FileLoader reads inputs from dir using a pattern such as "day%d.txt".
func FileLoader(dir, pattern string) InputLoader {
	return func(day int) (string, error) {
		return puzzle.ReadInput(puzzle.InputPath(dir, pattern, day))
	}
}

// StaticLoader returns the same input for every day.
func StaticLoader(input string) InputLoader {
	return func(int) (string, error) { return input, nil }
}

// Ledger is the subset of the answers store the runner uses.
type Ledger interface {
	Record(ctx context.Context, r store.Record) (store.Record, error)
	Latest(ctx context.Context, day, part int, inputHash string) (store.Record, bool, error)
}

// Options bounds execution.
type Options struct {
	Workers     int
	PartTimeout time.Duration
	// FailFast cancels outstanding tasks after the first failure.
	FailFast bool
}

// Runner solves tasks against a registry.
type Runner struct {
	registry *puzzle.Registry
	load     InputLoader
	ledger   Ledger
	opts     Options
}

// New creates a runner. A nil registry uses the default one.
func New(registry *puzzle.Registry, load InputLoader, opts Options) *Runner {
	if registry == nil {
		registry = puzzle.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{registry: registry, load: load, opts: opts}
}

// WithLedger records every successful answer into l.
func (r *Runner) WithLedger(l Ledger) *Runner {
	r.ledger = l
	return r
}

// Tasks expands days into tasks. part 0 selects both parts. No days means
// every registered day.
func (r *Runner) Tasks(days []int, part puzzle.Part) ([]Task, error) {
	if len(days) == 0 {
		for _, d := range r.registry.Days() {
			days = append(days, d.Number)
		}
	}
	var tasks []Task
	for _, n := range days {
		d, err := r.registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		for _, p := range puzzle.Parts {
			if part != 0 && p != part {
				continue
			}
			if _, err := d.Solver(p); err != nil {
				if part != 0 {
					return nil, err
				}
				continue
			}
			tasks = append(tasks, Task{Day: n, Part: p})
		}
	}
	return tasks, nil
}

// Run executes tasks and returns their results ordered by day and part.
// With FailFast the first failure is also returned as the error; otherwise
// failures are only reported through Result.Err.
func (r *Runner) Run(ctx context.Context, tasks []Task) ([]Result, error) {
	logging.RunnerDebug("running %d tasks with %d workers", len(tasks), r.opts.Workers)

	var g *errgroup.Group
	gctx := ctx
	if r.opts.FailFast {
		g, gctx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(r.opts.Workers)

	results := make([]Result, len(tasks))
	for i, t := range tasks {
		g.Go(func() error {
			res := r.runOne(gctx, t)
			if res.Err == nil {
				r.record(ctx, &res)
			}
			results[i] = res
			if res.Err != nil && r.opts.FailFast {
				return res.Err
			}
			return nil
		})
	}
	err := g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Day != results[j].Day {
			return results[i].Day < results[j].Day
		}
		return results[i].Part < results[j].Part
	})
	return results, err
}

func (r *Runner) runOne(ctx context.Context, t Task) Result {
	res := Result{Task: t}
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("%s: %w", t, err)
		return res
	}

	day, err := r.registry.Lookup(t.Day)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", t, err)
		return res
	}
	input, err := r.load(t.Day)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", t, err)
		return res
	}
	res.InputHash = puzzle.Hash(input)

	timer := logging.StartTimer(logging.CategoryRunner, t.String())
	res.Answer, res.Err = solve(ctx, day, t.Part, input, r.opts.PartTimeout)
	res.Duration = timer.Stop()
	return res
}

// solve runs one part under timeout. Solvers that ignore ctx keep running
// in the background until they return, but the result is abandoned.
func solve(ctx context.Context, day puzzle.Day, p puzzle.Part, input string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type outcome struct {
		answer string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		answer, err := day.Solve(ctx, p, input)
		done <- outcome{answer, err}
	}()

	timedOut := func() error {
		return fmt.Errorf("day %d part %d: %w after %v", day.Number, p, ErrTimeout, timeout)
	}
	select {
	case o := <-done:
		if o.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", timedOut()
		}
		return o.answer, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", timedOut()
		}
		return "", fmt.Errorf("day %d part %d: %w", day.Number, p, ctx.Err())
	}
}

// record stores a successful result and flags answers that changed for an
// unchanged input. Ledger failures are logged, never fatal to the task.
func (r *Runner) record(ctx context.Context, res *Result) {
	if r.ledger == nil {
		return
	}
	prev, ok, err := r.ledger.Latest(ctx, res.Day, int(res.Part), res.InputHash)
	if err != nil {
		logging.RunnerWarn("%s: ledger lookup failed: %v", res.Task, err)
	} else if ok && prev.Answer != res.Answer {
		res.Previous = prev.Answer
		logging.RunnerWarn("%s: answer changed from %s to %s for the same input", res.Task, prev.Answer, res.Answer)
	}

	_, err = r.ledger.Record(ctx, store.Record{
		Day:       res.Day,
		Part:      int(res.Part),
		Answer:    res.Answer,
		Duration:  res.Duration,
		InputHash: res.InputHash,
	})
	if err != nil {
		logging.RunnerWarn("%s: failed to record answer: %v", res.Task, err)
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
