package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"aoc2020/internal/puzzle"
	"aoc2020/internal/runner"
	"aoc2020/internal/store"
)

// =============================================================================
// RUN COMMAND
// =============================================================================

var (
	runPart      int
	runInput     string
	runAll       bool
	runKeepGoing bool
	runNoRecord  bool
)

// runCmd solves one or more days
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve days and print their answers",
	Long: `Solves the given days (e.g. "aoc run 11" or "aoc run day3 day4") and prints
one line per part:

  day 11 part 1: 2368

--input reads a specific file instead of the configured input directory;
"-" reads stdin. It requires exactly one day.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Only solve part 1 or 2")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input file for a single day (- for stdin)")
	runCmd.Flags().BoolVarP(&runAll, "all", "a", false, "Solve every registered day")
	runCmd.Flags().BoolVar(&runKeepGoing, "keep-going", false, "Report failures and continue with the other parts")
	runCmd.Flags().BoolVar(&runNoRecord, "no-record", false, "Do not record answers in the ledger")
}

func runRun(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if len(days) == 0 && !runAll {
		return errors.New("specify at least one day or --all")
	}
	if runAll && len(days) > 0 {
		return errors.New("--all cannot be combined with explicit days")
	}
	var part puzzle.Part
	if runPart != 0 {
		if part, err = puzzle.ParsePart(fmt.Sprint(runPart)); err != nil {
			return err
		}
	}

	load := runner.FileLoader(cfg.Input.Dir, cfg.Input.Pattern)
	if runInput != "" {
		if len(days) != 1 {
			return errors.New("--input needs exactly one day")
		}
		input, err := puzzle.ReadInput(runInput)
		if err != nil {
			return err
		}
		load = runner.StaticLoader(input)
	}

	r := runner.New(puzzle.Default(), load, runner.Options{
		Workers:     cfg.Runner.Workers,
		PartTimeout: cfg.GetPartTimeout(),
		FailFast:    cfg.Runner.FailFast && !runKeepGoing,
	})
	if cfg.Store.Enabled && !runNoRecord {
		ledger, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer ledger.Close()
		r.WithLedger(ledger)
	}

	tasks, err := r.Tasks(days, part)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, runErr := r.Run(ctx, tasks)
	printResults(cmd, results, runErr == nil)
	if runErr != nil {
		return runErr
	}
	if failed := runner.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d parts failed", len(failed), len(results))
	}
	return nil
}

// printResults writes answers to stdout. Failures go to stderr unless the
// run stopped early, in which case the returned error already says why.
func printResults(cmd *cobra.Command, results []runner.Result, showErrors bool) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, res := range results {
		if res.Err != nil {
			if showErrors {
				fmt.Fprintln(errOut, failStyle.Render(res.Err.Error()))
			}
			continue
		}
		line := fmt.Sprintf("%s: %s", res.Task, res.Answer)
		if res.Regressed() {
			line += " " + warnStyle.Render(fmt.Sprintf("(was %s for the same input)", res.Previous))
		}
		fmt.Fprintln(out, line)
	}
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		n, err := puzzle.ParseDay(a)
		if err != nil {
			return nil, err
		}
		days = append(days, n)
	}
	return days, nil
}
