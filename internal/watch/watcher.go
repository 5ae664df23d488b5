// Package watch re-runs days when their input files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"aoc2020/internal/logging"
)

// DefaultDebounce is how long an input must stay quiet before it is handled.
const DefaultDebounce = 300 * time.Millisecond

// Handler is invoked once per settled change of day's input.
type Handler func(ctx context.Context, day int)

// Options configures a Watcher.
type Options struct {
	Dir      string
	Pattern  string
	Days     []int // empty means every day
	Debounce time.Duration
}

// Stats counts watcher activity.
type Stats struct {
	Events    int
	Triggered int
	Errors    int
}

// Watcher watches an input directory with fsnotify.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	opts    Options
	days    map[int]bool
	handle  Handler
	pending map[int]time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stats   Stats
}

// New creates a watcher; nothing is watched until Start.
func New(opts Options, handle Handler) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	var days map[int]bool
	if len(opts.Days) > 0 {
		days = make(map[int]bool, len(opts.Days))
		for _, d := range opts.Days {
			days[d] = true
		}
	}
	return &Watcher{
		watcher: w,
		opts:    opts,
		days:    days,
		handle:  handle,
		pending: make(map[int]time.Time),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start creates the input directory if needed and begins watching it in a
// background goroutine. It returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	fail := func(err error) error {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	if err := os.MkdirAll(w.opts.Dir, 0755); err != nil {
		return fail(fmt.Errorf("failed to create input dir: %w", err))
	}
	if err := w.watcher.Add(w.opts.Dir); err != nil {
		return fail(fmt.Errorf("failed to watch %s: %w", w.opts.Dir, err))
	}
	logging.Watch("watching %s for %s", w.opts.Dir, w.opts.Pattern)

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the fsnotify handle. It is safe to
// call after the context passed to Start was cancelled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		logging.WatchError("error closing watcher: %v", err)
	}
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} { return w.doneCh }

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(max(w.opts.Debounce/4, 10*time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("context cancelled")
			return
		case <-w.stopCh:
			logging.WatchDebug("stop signal received")
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchError("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-tick.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	day, ok := DayFor(w.opts.Dir, w.opts.Pattern, event.Name)
	if !ok || (w.days != nil && !w.days[day]) {
		return
	}
	logging.WatchDebug("%s on %s (day %d)", event.Op, event.Name, day)

	w.mu.Lock()
	w.stats.Events++
	w.pending[day] = time.Now()
	w.mu.Unlock()
}

// flush hands settled days to the handler, in the loop goroutine so a day
// never runs concurrently with itself.
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var ready []int
	for day, at := range w.pending {
		if now.Sub(at) >= w.opts.Debounce {
			ready = append(ready, day)
			delete(w.pending, day)
		}
	}
	w.stats.Triggered += len(ready)
	w.mu.Unlock()

	for _, day := range ready {
		if ctx.Err() != nil {
			return
		}
		w.handle(ctx, day)
	}
}

// DayFor maps an input file path back to its day through pattern.
func DayFor(dir, pattern, path string) (int, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return 0, false
	}
	var day int
	if _, err := fmt.Sscanf(rel, pattern, &day); err != nil {
		return 0, false
	}
	if day < 1 || day > 25 || fmt.Sprintf(pattern, day) != rel {
		return 0, false
	}
	return day, true
}
