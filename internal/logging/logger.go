// Package logging provides config-driven categorized logging for aoc.
// Every category shares one zap core; categories can be switched off
// individually from the logging section of the config file.
// Until Initialize is called all loggers are no-ops, so solvers and tests
// can log freely without setup.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryRunner Category = "runner" // Task scheduling and results
	CategorySolver Category = "solver" // Per-day solver diagnostics
	CategoryStore  Category = "store"  // Results ledger
	CategoryWatch  Category = "watch"  // Input file watcher
	CategoryFetch  Category = "fetch"  // Input downloads
)

// Options mirrors config.LoggingConfig so this package stays import-free of config.
type Options struct {
	Level      string          // debug, info, warn, error
	Format     string          // console, json
	Categories map[string]bool // per-category toggles; missing means enabled
	Output     []string        // zap output paths, stderr when empty
}

// Logger is a category-scoped printf-style logger.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu         sync.RWMutex
	base       = zap.NewNop()
	categories map[string]bool
	loggers    = make(map[Category]*Logger)
)

// Initialize builds the shared zap logger from opts.
func Initialize(opts Options) error {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var cfg zap.Config
	switch opts.Format {
	case "", "console", "text":
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return fmt.Errorf("invalid log format %q (valid: console, json)", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	if len(opts.Output) > 0 {
		cfg.OutputPaths = opts.Output
		cfg.ErrorOutputPaths = opts.Output
	} else {
		cfg.OutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	install(logger, opts.Categories)

	Get(CategoryBoot).Debug("logging initialized: level=%s format=%s", level, cfg.Encoding)
	return nil
}

// InitializeWithCore installs a caller-supplied core, e.g. an observer in tests.
func InitializeWithCore(core zapcore.Core, cats map[string]bool) {
	install(zap.New(core), cats)
}

func install(logger *zap.Logger, cats map[string]bool) {
	mu.Lock()
	defer mu.Unlock()

	_ = base.Sync()
	base = logger
	categories = cats
	loggers = make(map[Category]*Logger)
}

// Reset restores the no-op logger.
func Reset() {
	install(zap.NewNop(), nil)
}

// Sync flushes buffered entries (call at shutdown).
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

// Zap exposes the shared logger for libraries that want a *zap.Logger.
func Zap() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if categories == nil {
		return true
	}
	enabled, exists := categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Disabled categories get a no-op logger.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}
	z := zap.NewNop()
	if categoryEnabled(category) {
		z = base.Named(string(category))
	}
	l := &Logger{category: category, sugar: z.Sugar()}
	loggers[category] = l
	return l
}

// With returns a logger carrying structured key/value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.sugar.Debugf(format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.sugar.Infof(format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) { l.sugar.Warnf(format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.sugar.Errorf(format, args...) }

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...any) { Get(CategoryBoot).Info(format, args...) }

// BootDebug logs debug to the boot category
func BootDebug(format string, args ...any) { Get(CategoryBoot).Debug(format, args...) }

// Runner logs to the runner category
func Runner(format string, args ...any) { Get(CategoryRunner).Info(format, args...) }

// RunnerDebug logs debug to the runner category
func RunnerDebug(format string, args ...any) { Get(CategoryRunner).Debug(format, args...) }

// RunnerWarn logs warning to the runner category
func RunnerWarn(format string, args ...any) { Get(CategoryRunner).Warn(format, args...) }

// SolverDebug logs debug to the solver category
func SolverDebug(format string, args ...any) { Get(CategorySolver).Debug(format, args...) }

// Store logs to the store category
func Store(format string, args ...any) { Get(CategoryStore).Info(format, args...) }

// StoreDebug logs debug to the store category
func StoreDebug(format string, args ...any) { Get(CategoryStore).Debug(format, args...) }

// Watch logs to the watch category
func Watch(format string, args ...any) { Get(CategoryWatch).Info(format, args...) }

// WatchDebug logs debug to the watch category
func WatchDebug(format string, args ...any) { Get(CategoryWatch).Debug(format, args...) }

// WatchError logs error to the watch category
func WatchError(format string, args ...any) { Get(CategoryWatch).Error(format, args...) }

// Fetch logs to the fetch category
func Fetch(format string, args ...any) { Get(CategoryFetch).Info(format, args...) }

// FetchWarn logs warning to the fetch category
func FetchWarn(format string, args ...any) { Get(CategoryFetch).Warn(format, args...) }

// =============================================================================
// TIMING
// =============================================================================

// Timer measures one operation and logs its duration on Stop.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer starts timing operation under category.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
