package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2020/internal/config"
	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
	"aoc2020/internal/runner"
	"aoc2020/internal/store"
)

const day1Input = "1721\n979\n366\n299\n675\n1456\n"

// setup points the global config at a temp workspace and resets flags.
func setup(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()

	ws := t.TempDir()
	cfg = config.DefaultConfig()
	cfg.Input.Dir = filepath.Join(ws, "input", "2020")
	cfg.Store.Path = filepath.Join(ws, ".aoc", "results.db")
	cfg.Fetch.PageDir = filepath.Join(ws, ".aoc", "pages")
	configPath = filepath.Join(ws, "aoc.yaml")

	runPart, runInput, runAll, runKeepGoing, runNoRecord = 0, "", false, false, false
	historyLimit, fetchAll, initForce = 20, false, false
	showRaw, showRefresh, showWidth = false, false, 80

	require.NoError(t, os.MkdirAll(cfg.Input.Dir, 0755))
	return ws
}

func writeInput(t *testing.T, day int, content string) {
	t.Helper()
	path := puzzle.InputPath(cfg.Input.Dir, cfg.Input.Pattern, day)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func command() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestRunCmd_PrintsAnswers(t *testing.T) {
	setup(t)
	writeInput(t, 1, day1Input)

	cmd, out, _ := command()
	require.NoError(t, runRun(cmd, []string{"day1"}))
	assert.Equal(t, "day 1 part 1: 514579\nday 1 part 2: 241861950\n", out.String())

	// Answers were recorded.
	cmd, out, _ = command()
	require.NoError(t, runHistory(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "514579")
	assert.Contains(t, out.String(), "241861950")
}

func TestRunCmd_SinglePart(t *testing.T) {
	setup(t)
	writeInput(t, 1, day1Input)
	runPart = 2

	cmd, out, _ := command()
	require.NoError(t, runRun(cmd, []string{"1"}))
	assert.Equal(t, "day 1 part 2: 241861950\n", out.String())

	runPart = 3
	assert.ErrorIs(t, runRun(cmd, []string{"1"}), puzzle.ErrUnknownPart)
}

func TestRunCmd_InputFlag(t *testing.T) {
	ws := setup(t)
	path := filepath.Join(ws, "custom.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\n\na\nb\nc\n\nab\nac\n\na\na\na\na\n\nb\n"), 0644))
	runInput = path
	runNoRecord = true

	cmd, out, _ := command()
	require.NoError(t, runRun(cmd, []string{"6"}))
	assert.Equal(t, "day 6 part 1: 11\nday 6 part 2: 6\n", out.String())
	assert.NoFileExists(t, cfg.Store.Path)

	assert.Error(t, runRun(cmd, []string{"6", "7"}), "--input takes one day")
}

func TestRunCmd_Arguments(t *testing.T) {
	setup(t)
	cmd, _, _ := command()

	assert.Error(t, runRun(cmd, nil))
	assert.ErrorIs(t, runRun(cmd, []string{"26"}), puzzle.ErrUnknownDay)
	assert.ErrorIs(t, runRun(cmd, []string{"20"}), puzzle.ErrUnknownDay)

	runAll = true
	assert.Error(t, runRun(cmd, []string{"1"}))
}

func TestRunCmd_MissingInputFailsFast(t *testing.T) {
	setup(t)
	cmd, out, _ := command()
	err := runRun(cmd, []string{"2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.Empty(t, out.String())
}

func TestRunCmd_KeepGoing(t *testing.T) {
	setup(t)
	writeInput(t, 1, day1Input)
	writeInput(t, 2, "not a policy\n")
	runKeepGoing = true

	cmd, out, errOut := command()
	err := runRun(cmd, []string{"1", "2"})
	require.Error(t, err)
	assert.Equal(t, "2 of 4 parts failed", err.Error())
	assert.Contains(t, out.String(), "day 1 part 2: 241861950")
	assert.Contains(t, errOut.String(), "malformed input")
}

func TestRunCmd_ReportsChangedAnswer(t *testing.T) {
	setup(t)
	writeInput(t, 1, day1Input)

	ledger, err := store.Open(cfg.Store.Path)
	require.NoError(t, err)
	_, err = ledger.Record(context.Background(), store.Record{
		Day: 1, Part: 1, Answer: "123", InputHash: puzzle.Hash(day1Input),
	})
	require.NoError(t, err)
	require.NoError(t, ledger.Close())

	runPart = 1
	cmd, out, _ := command()
	require.NoError(t, runRun(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "day 1 part 1: 514579 (was 123 for the same input)")
}

func TestListCmd(t *testing.T) {
	setup(t)
	writeInput(t, 3, "..#\n#..\n")

	cmd, out, _ := command()
	require.NoError(t, runList(cmd, nil))

	lines := strings.Split(out.String(), "\n")
	var day3, day4 string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Toboggan Trajectory"):
			day3 = l
		case strings.Contains(l, "Passport Processing"):
			day4 = l
		}
	}
	assert.Contains(t, day3, "present")
	assert.Contains(t, day4, "missing")
	assert.Contains(t, out.String(), "Shuttle Search")
}

func TestVerifyCmd(t *testing.T) {
	setup(t)
	cmd, out, _ := command()
	require.NoError(t, runVerify(cmd, nil))
	assert.Contains(t, out.String(), "examples passed")
	assert.Contains(t, out.String(), "day 13 part 2 example 1: ok")

	cmd, out, _ = command()
	require.NoError(t, runVerify(cmd, []string{"9"}))
	assert.Contains(t, out.String(), "2 examples passed")
}

func TestHistoryCmd_Empty(t *testing.T) {
	setup(t)
	cmd, out, _ := command()
	require.NoError(t, runHistory(cmd, nil))
	assert.Equal(t, "No recorded answers.\n", out.String())

	cfg.Store.Enabled = false
	assert.Error(t, runHistory(cmd, nil))
}

func TestInitCmd(t *testing.T) {
	setup(t)
	cfg.Input.Dir = filepath.Join(filepath.Dir(configPath), "fresh", "inputs")

	cmd, out, _ := command()
	require.NoError(t, runInit(cmd, nil))
	assert.FileExists(t, configPath)
	assert.DirExists(t, cfg.Input.Dir)
	assert.Contains(t, out.String(), "wrote")

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Input, loaded.Input)

	// Idempotent without --force.
	cmd, out, _ = command()
	require.NoError(t, runInit(cmd, nil))
	assert.Contains(t, out.String(), "already exists")
}

func TestFetchCmd(t *testing.T) {
	setup(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2020/day/1/input" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(day1Input))
	}))
	defer srv.Close()
	cfg.Fetch.BaseURL = srv.URL
	cfg.Fetch.Session = "s"

	cmd, out, _ := command()
	require.NoError(t, runFetch(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "day 1: downloaded")

	cmd, out, _ = command()
	require.NoError(t, runFetch(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "day 1: already at")

	require.Error(t, runFetch(cmd, []string{"2"}))
	require.Error(t, runFetch(cmd, nil))
}

func TestSolveAndPrint_Serialized(t *testing.T) {
	setup(t)
	writeInput(t, 1, day1Input)
	r := runner.New(puzzle.Default(), runner.FileLoader(cfg.Input.Dir, cfg.Input.Pattern), runner.Options{Workers: 2})

	cmd, out, _ := command()
	solve := solveAndPrint(cmd, r)

	const calls = 8
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			solve(context.Background(), 1)
		}()
	}
	wg.Wait()

	block := "day 1 part 1: 514579\nday 1 part 2: 241861950\n"
	assert.Equal(t, strings.Repeat(block, calls), out.String())
}

func TestShowCmd(t *testing.T) {
	setup(t)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2020/day/1" {
			http.NotFound(w, r)
			return
		}
		hits++
		w.Write([]byte(`<html><body><main><article class="day-desc"><h2>--- Day 1: Report Repair ---</h2><p>Find the <em>two entries</em>.</p></article></main></body></html>`))
	}))
	defer srv.Close()
	cfg.Fetch.BaseURL = srv.URL
	showRaw = true

	cmd, out, _ := command()
	require.NoError(t, runShow(cmd, []string{"1"}))
	assert.Equal(t, "## --- Day 1: Report Repair ---\n\nFind the **two entries**.\n", out.String())

	cmd, _, _ = command()
	require.NoError(t, runShow(cmd, []string{"1"}))
	assert.Equal(t, 1, hits, "second show should use the cached page")

	showRefresh = true
	cmd, _, _ = command()
	require.NoError(t, runShow(cmd, []string{"1"}))
	assert.Equal(t, 2, hits)

	showRaw, showRefresh = false, false
	cfg.Fetch.Style = "notty"
	cmd, out, _ = command()
	require.NoError(t, runShow(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "Report Repair")

	require.Error(t, runShow(cmd, []string{"x"}))
	require.ErrorIs(t, runShow(cmd, []string{"14"}), puzzle.ErrUnknownDay)
}

func TestPersistentPreRun(t *testing.T) {
	setup(t)
	t.Cleanup(logging.Reset)

	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: loud\n"), 0644))
	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	require.NoError(t, os.WriteFile(configPath, []byte("runner:\n  workers: 2\n"), 0644))
	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	assert.Equal(t, 2, cfg.Runner.Workers)
	assert.NotNil(t, logger)
}
