// Package puzzle defines the contract every Advent of Code day implements
// and the registry the CLI resolves days from.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Year is the event every registered day belongs to.
const Year = 2020

// Part selects one of the two sub-problems of a day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in execution order.
var Parts = []Part{PartOne, PartTwo}

// ParsePart converts "1" or "2" to a Part.
func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (n != int(PartOne) && n != int(PartTwo)) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
	return Part(n), nil
}

func (p Part) String() string {
	return strconv.Itoa(int(p))
}

// Solver computes the answer of one part from the raw puzzle input.
// Solvers must not retain input and must not share state between calls.
type Solver func(ctx context.Context, input string) (any, error)

// Example is a sample input with its known answer.
type Example struct {
	Part  Part
	Input string
	Want  string
}

// Day is one calendar day's puzzle.
type Day struct {
	Number   int
	Title    string
	Parts    map[Part]Solver
	Examples []Example
}

// Solver returns the solver for part p.
func (d Day) Solver(p Part) (Solver, error) {
	s, ok := d.Parts[p]
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: day %d has no part %d", ErrUnknownPart, d.Number, p)
	}
	return s, nil
}

// Solve runs part p against input and formats the answer.
func (d Day) Solve(ctx context.Context, p Part, input string) (string, error) {
	s, err := d.Solver(p)
	if err != nil {
		return "", err
	}
	v, err := s(ctx, input)
	if err != nil {
		return "", fmt.Errorf("day %d part %d: %w", d.Number, p, err)
	}
	return fmt.Sprint(v), nil
}

// Registry maps day numbers to their puzzles.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Day
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds d. Registering an invalid or duplicate day is a
// programming error and panics.
func (r *Registry) Register(d Day) {
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("puzzle: invalid day number %d", d.Number))
	}
	if len(d.Parts) == 0 {
		panic(fmt.Sprintf("puzzle: day %d registered without parts", d.Number))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.days[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	r.days[d.Number] = d
}

// Lookup returns the registered day n.
func (r *Registry) Lookup(n int) (Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns all registered days ordered by number.
func (r *Registry) Days() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry day packages register into.
func Default() *Registry { return defaultRegistry }

// Register adds d to the default registry.
func Register(d Day) { defaultRegistry.Register(d) }

// Lookup finds day n in the default registry.
func Lookup(n int) (Day, error) { return defaultRegistry.Lookup(n) }

// Days lists the default registry.
func Days() []Day { return defaultRegistry.Days() }

// ParseDay converts a CLI argument such as "11" or "day11" to a day number.
func ParseDay(s string) (int, error) {
	if len(s) > 3 && s[:3] == "day" {
		s = s[3:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 25 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}
	return n, nil
}
