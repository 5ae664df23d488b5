// Package day05 solves "Binary Boarding": boarding passes are ten-bit seat
// IDs spelled with F/B (row) and L/R (column).
package day05

import (
	"context"
	"fmt"
	"sort"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 5,
		Title:  "Binary Boarding",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				ids, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(ids)
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				ids, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return MissingSeat(ids)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: "FBFBBFFRLR\nBFFFBBFRRR\nFFFBBBFRRR\nBBFFBBFRLL\n", Want: "820"},
			{Part: puzzle.PartTwo, Input: "FFFFFFBLLL\nFFFFFFBLLR\nFFFFFFBLRR\n", Want: "10"},
		},
	})
}

// MaxSeat is the largest encodable seat ID.
const MaxSeat = 1<<10 - 1

// SeatID decodes a boarding pass into row*8+column.
func SeatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, fmt.Errorf("boarding pass %q: want 10 characters, got %d", pass, len(pass))
	}
	id := 0
	for i := 0; i < len(pass); i++ {
		id <<= 1
		switch pass[i] {
		case 'F', 'L':
		case 'B', 'R':
			id |= 1
		default:
			return 0, fmt.Errorf("boarding pass %q: unexpected %q", pass, pass[i])
		}
	}
	return id, nil
}

// Parse decodes one boarding pass per line.
func Parse(input string) ([]int, error) {
	lines := puzzle.Lines(input)
	ids := make([]int, 0, len(lines))
	for i, line := range lines {
		id, err := SeatID(line)
		if err != nil {
			return nil, puzzle.Malformed(i+1, "%v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Part1 returns the highest seat ID.
func Part1(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no boarding passes", puzzle.ErrNoSolution)
	}
	best := ids[0]
	for _, id := range ids[1:] {
		best = max(best, id)
	}
	return best, nil
}

// MissingSeat finds the absent ID whose two neighbors are both taken,
// looking it up in a set over the whole ID space.
func MissingSeat(ids []int) (int, error) {
	taken := make(map[int]bool, len(ids))
	for _, id := range ids {
		taken[id] = true
	}
	for id := 1; id < MaxSeat; id++ {
		if !taken[id] && taken[id-1] && taken[id+1] {
			return id, nil
		}
	}
	return 0, errNoSeat
}

// missingSeatMinMax scans only between the lowest and highest taken IDs.
func missingSeatMinMax(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, errNoSeat
	}
	var taken [MaxSeat + 1]bool
	lo, hi := MaxSeat, 0
	for _, id := range ids {
		taken[id] = true
		lo, hi = min(lo, id), max(hi, id)
	}
	for id := lo + 1; id < hi; id++ {
		if !taken[id] {
			return id, nil
		}
	}
	return 0, errNoSeat
}

// missingSeatSorted sorts a copy and looks for a gap of exactly two.
func missingSeatSorted(ids []int) (int, error) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 2 {
			return sorted[i] - 1, nil
		}
	}
	return 0, errNoSeat
}

var errNoSeat = fmt.Errorf("%w: no free seat between two taken seats", puzzle.ErrNoSolution)
