// Package day13 solves "Shuttle Search": pick the earliest bus, then find the
// timestamp where the buses depart one minute apart.
package day13

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 13,
		Title:  "Shuttle Search",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				n, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(n), nil
			},
			puzzle.PartTwo: func(ctx context.Context, input string) (any, error) {
				n, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Contest(ctx, n.Buses)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "295"},
			{Part: puzzle.PartTwo, Input: sample, Want: "1068781"},
		},
	})
}

const sample = "939\n7,13,x,x,59,x,31,19\n"

// Bus is an in-service bus and its position in the schedule list.
type Bus struct {
	ID     int
	Offset int
}

// Notes are the puzzle notes: the earliest departure and the bus list.
type Notes struct {
	Earliest int
	Buses    []Bus
}

// Parse reads the two-line notes.
func Parse(input string) (Notes, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return Notes{}, fmt.Errorf("%w: want 2 lines, got %d", puzzle.ErrMalformedInput, len(lines))
	}
	t, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || t < 0 {
		return Notes{}, puzzle.Malformed(1, "bad timestamp %q", lines[0])
	}
	buses, err := ParseBuses(lines[1])
	if err != nil {
		return Notes{}, err
	}
	return Notes{Earliest: t, Buses: buses}, nil
}

// ParseBuses reads a comma-separated schedule where "x" is out of service.
func ParseBuses(line string) ([]Bus, error) {
	var buses []Bus
	for i, f := range strings.Split(strings.TrimSpace(line), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil || id <= 0 {
			return nil, puzzle.Malformed(2, "bad bus id %q", f)
		}
		buses = append(buses, Bus{ID: id, Offset: i})
	}
	if len(buses) == 0 {
		return nil, puzzle.Malformed(2, "no buses in service")
	}
	return buses, nil
}

// Wait is how long after t the bus next departs; zero when it leaves at t.
func (b Bus) Wait(t int) int {
	return (b.ID - t%b.ID) % b.ID
}

// Part1 multiplies the soonest bus ID by the minutes waited for it.
func Part1(n Notes) int {
	best := n.Buses[0]
	for _, b := range n.Buses[1:] {
		if b.Wait(n.Earliest) < best.Wait(n.Earliest) {
			best = b
		}
	}
	return best.ID * best.Wait(n.Earliest)
}

// Contest finds the earliest t at which every bus departs at t+Offset. It
// sieves one bus at a time, stepping by the least common multiple of the
// buses already aligned.
func Contest(ctx context.Context, buses []Bus) (int, error) {
	t, step := 0, 1
	for _, b := range buses {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		found := false
		for range b.ID {
			if (t+b.Offset)%b.ID == 0 {
				found = true
				break
			}
			t += step
		}
		if !found {
			return 0, fmt.Errorf("%w: bus %d can never line up at offset %d",
				puzzle.ErrNoSolution, b.ID, b.Offset)
		}
		step = lcm(step, b.ID)
	}
	return t, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
