package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"aoc2020/internal/fetch"
	"aoc2020/internal/puzzle"
)

var fetchAll bool

// fetchCmd downloads puzzle inputs
var fetchCmd = &cobra.Command{
	Use:   "fetch [day...]",
	Short: "Download puzzle inputs using the AOC_SESSION cookie",
	Long: `Downloads the personal puzzle input of each day into the input directory.
Inputs already on disk are left alone. The session cookie is read from the
AOC_SESSION environment variable.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchAll, "all", "a", false, "Fetch every registered day")
}

func runFetch(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if fetchAll {
		for _, d := range puzzle.Days() {
			days = append(days, d.Number)
		}
	}
	if len(days) == 0 {
		return errors.New("specify at least one day or --all")
	}

	client := fetch.New(cfg.Fetch.BaseURL, cfg.Fetch.Session, cfg.Input.Dir, cfg.Input.Pattern, cfg.GetFetchTimeout())

	ctx, cancel := signalContext()
	defer cancel()

	out := cmd.OutOrStdout()
	for _, d := range days {
		path, downloaded, err := client.Input(ctx, d)
		if err != nil {
			return err
		}
		if downloaded {
			fmt.Fprintf(out, "day %d: downloaded %s\n", d, path)
		} else {
			fmt.Fprintf(out, "day %d: already at %s\n", d, path)
		}
	}
	return nil
}
