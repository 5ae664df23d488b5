// Package fetch downloads puzzle inputs from adventofcode.com.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
)

// UserAgent identifies the tool to the puzzle server.
const UserAgent = "aoc2020 input fetcher (github.com/aoc2020)"

// ErrNoSession is returned when no session cookie is configured.
var ErrNoSession = errors.New("no session cookie configured (set AOC_SESSION)")

// Client fetches inputs into an input directory.
type Client struct {
	BaseURL string
	Session string
	Dir     string
	Pattern string
	HTTP    *http.Client
}

// New creates a client with the given request timeout.
func New(baseURL, session, dir, pattern string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
		Dir:     dir,
		Pattern: pattern,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// URL is the input address of day.
func (c *Client) URL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.BaseURL, puzzle.Year, day)
}

// Input makes sure day's input exists on disk and returns its path. An
// existing file is never downloaded again.
func (c *Client) Input(ctx context.Context, day int) (path string, downloaded bool, err error) {
	path = puzzle.InputPath(c.Dir, c.Pattern, day)
	if _, err := os.Stat(path); err == nil {
		logging.Get(logging.CategoryFetch).Debug("day %d input already at %s", day, path)
		return path, false, nil
	}
	if c.Session == "" {
		return "", false, ErrNoSession
	}

	body, err := c.get(ctx, c.URL(day))
	if err != nil {
		return "", false, err
	}
	if err := writeAtomic(path, body); err != nil {
		return "", false, err
	}
	logging.Fetch("downloaded day %d input (%d bytes) to %s", day, len(body), path)
	return path, true, nil
}

// PageURL is the puzzle description address of day.
func (c *Client) PageURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d", c.BaseURL, puzzle.Year, day)
}

// Page downloads day's puzzle description HTML. The session cookie is
// optional here; without it only part one is included.
func (c *Client) Page(ctx context.Context, day int) ([]byte, error) {
	body, err := c.get(ctx, c.PageURL(day))
	if err != nil {
		return nil, err
	}
	logging.Get(logging.CategoryFetch).Debug("fetched day %d page (%d bytes)", day, len(body))
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.Session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if len(msg) > 120 {
			msg = msg[:120]
		}
		return nil, fmt.Errorf("bad status fetching %s: %s: %s", url, resp.Status, msg)
	}
	return body, nil
}

// writeAtomic writes via a temp file so a failed download never leaves a
// partial input behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create input dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".fetch-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write input: %w", err)
	}
	// CreateTemp uses 0600.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set input permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write input: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move input into place: %w", err)
	}
	return nil
}
