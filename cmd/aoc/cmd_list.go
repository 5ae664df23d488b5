package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aoc2020/internal/puzzle"
)

// listCmd shows the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solved days and whether their input is present",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	days := puzzle.Days()
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		input := failStyle.Render("missing")
		if _, err := os.Stat(puzzle.InputPath(cfg.Input.Dir, cfg.Input.Pattern, d.Number)); err == nil {
			input = okStyle.Render("present")
		}
		rows = append(rows, []string{
			strconv.Itoa(d.Number),
			d.Title,
			strconv.Itoa(len(d.Parts)),
			strconv.Itoa(len(d.Examples)),
			input,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Day", "Title", "Parts", "Examples", "Input"}, rows))
	return nil
}
