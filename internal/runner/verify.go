package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
)

// Check is the outcome of one registered example.
type Check struct {
	Day   int
	Part  puzzle.Part
	Index int
	Want  string
	Got   string
	Err   error
}

// OK reports whether the example produced its expected answer.
func (c Check) OK() bool { return c.Err == nil && c.Got == c.Want }

func (c Check) String() string {
	switch {
	case c.Err != nil:
		return fmt.Sprintf("day %d part %d example %d: %v", c.Day, c.Part, c.Index, c.Err)
	case !c.OK():
		return fmt.Sprintf("day %d part %d example %d: got %s, want %s", c.Day, c.Part, c.Index, c.Got, c.Want)
	default:
		return fmt.Sprintf("day %d part %d example %d: ok", c.Day, c.Part, c.Index)
	}
}

// Verify runs the examples of days, or of every registered day when days is
// empty. A failing example is a Check, not an error; the error is reserved
// for unknown days.
func (r *Runner) Verify(ctx context.Context, days []int) ([]Check, error) {
	var selected []puzzle.Day
	if len(days) == 0 {
		selected = r.registry.Days()
	}
	for _, n := range days {
		d, err := r.registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		selected = append(selected, d)
	}

	var checks []Check
	var examples []puzzle.Example
	var owners []puzzle.Day
	for _, d := range selected {
		for i, ex := range d.Examples {
			checks = append(checks, Check{Day: d.Number, Part: ex.Part, Index: i, Want: ex.Want})
			examples = append(examples, ex)
			owners = append(owners, d)
		}
	}

	g := &errgroup.Group{}
	g.SetLimit(r.opts.Workers)
	for i := range checks {
		g.Go(func() error {
			checks[i].Got, checks[i].Err = solve(ctx, owners[i], examples[i].Part, examples[i].Input, r.opts.PartTimeout)
			if !checks[i].OK() {
				logging.RunnerWarn("%s", checks[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	logging.RunnerDebug("verified %d examples from %d days", len(checks), len(selected))
	return checks, nil
}
