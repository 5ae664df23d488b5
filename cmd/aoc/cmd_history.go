package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"aoc2020/internal/puzzle"
	"aoc2020/internal/store"
)

var historyLimit int

// historyCmd prints the answers ledger
var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded answers, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum rows (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !cfg.Store.Enabled {
		return errors.New("the answers ledger is disabled (store.enabled: false)")
	}
	day := 0
	if len(args) == 1 {
		n, err := puzzle.ParseDay(args[0])
		if err != nil {
			return err
		}
		day = n
	}

	ledger, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer ledger.Close()

	records, err := ledger.History(context.Background(), day, historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded answers.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.RecordedAt.Local().Format(time.DateTime),
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Part),
			r.Answer,
			r.Duration.Round(time.Microsecond).String(),
			shortID(r.InputHash),
			shortID(r.ID),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Recorded", "Day", "Part", "Answer", "Took", "Input", "ID"}, rows))
	return nil
}
