package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2020/internal/puzzle"
	"aoc2020/internal/runner"
)

// verifyCmd checks every solver against its sample answers
var verifyCmd = &cobra.Command{
	Use:   "verify [day...]",
	Short: "Run the solvers against the puzzle examples",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	r := runner.New(puzzle.Default(), nil, runner.Options{
		Workers:     cfg.Runner.Workers,
		PartTimeout: cfg.GetPartTimeout(),
	})

	ctx, cancel := signalContext()
	defer cancel()

	checks, err := r.Verify(ctx, days)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, c := range checks {
		if c.OK() {
			fmt.Fprintln(out, okStyle.Render(c.String()))
			continue
		}
		failed++
		fmt.Fprintln(out, failStyle.Render(c.String()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d examples failed", failed, len(checks))
	}
	fmt.Fprintf(out, "%d examples passed\n", len(checks))
	return nil
}
