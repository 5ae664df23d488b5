package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"aoc2020/internal/describe"
	"aoc2020/internal/fetch"
	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
)

var (
	showRaw     bool
	showRefresh bool
	showWidth   int
)

// showCmd prints a puzzle description
var showCmd = &cobra.Command{
	Use:   "show DAY",
	Short: "Print a day's puzzle description",
	Long: `Downloads the puzzle page of DAY, converts its description to markdown
and renders it for the terminal. Pages are cached under fetch.page_dir; the
part two text only appears once part one is solved for the session, so use
--refresh to download it again.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print markdown without rendering")
	showCmd.Flags().BoolVar(&showRefresh, "refresh", false, "Ignore the cached page")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Wrap width")
}

func runShow(cmd *cobra.Command, args []string) error {
	day, err := puzzle.ParseDay(args[0])
	if err != nil {
		return err
	}
	if _, err := puzzle.Lookup(day); err != nil {
		return err
	}

	cache := describe.Cache{Dir: cfg.Fetch.PageDir}
	page, cached, err := cache.Get(day)
	if err != nil {
		return err
	}
	if !cached || showRefresh {
		client := fetch.New(cfg.Fetch.BaseURL, cfg.Fetch.Session, cfg.Input.Dir, cfg.Input.Pattern, cfg.GetFetchTimeout())

		ctx, cancel := signalContext()
		defer cancel()

		body, err := client.Page(ctx, day)
		if err != nil {
			return err
		}
		page = string(body)
		if err := cache.Put(day, body); err != nil {
			logging.FetchWarn("day %d: %v", day, err)
		}
	}

	md, err := describe.Markdown(page, cfg.Fetch.BaseURL)
	if errors.Is(err, describe.ErrNoArticle) {
		return fmt.Errorf("day %d: %w", day, err)
	}
	if err != nil {
		return err
	}

	out := md
	if !showRaw {
		out, err = describe.Render(md, cfg.Fetch.Style, showWidth)
		if err != nil {
			return err
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
