package main

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
	"aoc2020/internal/runner"
	"aoc2020/internal/store"
	"aoc2020/internal/watch"
)

// watchCmd re-solves days whenever their input changes
var watchCmd = &cobra.Command{
	Use:   "watch day...",
	Short: "Re-run days whenever their input file changes",
	Long: `Watches the input directory and solves a day again each time its input
file is written. Runs once at startup for inputs that already exist. Stops on
Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	r := runner.New(puzzle.Default(), runner.FileLoader(cfg.Input.Dir, cfg.Input.Pattern), runner.Options{
		Workers:     cfg.Runner.Workers,
		PartTimeout: cfg.GetPartTimeout(),
	})
	if cfg.Store.Enabled {
		ledger, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer ledger.Close()
		r.WithLedger(ledger)
	}

	solve := solveAndPrint(cmd, r)

	ctx, cancel := signalContext()
	defer cancel()

	w, err := watch.New(watch.Options{
		Dir:     cfg.Input.Dir,
		Pattern: cfg.Input.Pattern,
		Days:    days,
	}, solve)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	for _, d := range days {
		if _, err := os.Stat(puzzle.InputPath(cfg.Input.Dir, cfg.Input.Pattern, d)); err == nil {
			solve(ctx, d)
		}
	}

	<-w.Done()
	return nil
}

// solveAndPrint returns a handler that solves both parts of a day and
// prints them. Calls are serialized so the startup pass and watch events
// never interleave their output.
func solveAndPrint(cmd *cobra.Command, r *runner.Runner) watch.Handler {
	var mu sync.Mutex
	return func(ctx context.Context, day int) {
		mu.Lock()
		defer mu.Unlock()

		tasks, err := r.Tasks([]int{day}, 0)
		if err != nil {
			logging.WatchError("day %d: %v", day, err)
			return
		}
		results, _ := r.Run(ctx, tasks)
		printResults(cmd, results, true)
	}
}
