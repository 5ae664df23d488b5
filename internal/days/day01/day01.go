// Package day01 solves "Report Repair": find the expense entries that sum
// to 2020 and multiply them.
package day01

import (
	"context"
	"fmt"

	"aoc2020/internal/puzzle"
)

// Target is the sum the entries must reach.
const Target = 2020

func init() {
	puzzle.Register(puzzle.Day{
		Number: 1,
		Title:  "Report Repair",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				entries, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(entries)
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				entries, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part2(entries)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "514579"},
			{Part: puzzle.PartTwo, Input: sample, Want: "241861950"},
		},
	})
}

const sample = "1721\n979\n366\n299\n675\n1456\n"

// Parse reads one expense entry per line. Entries cannot be negative.
func Parse(input string) ([]int, error) {
	entries, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if e < 0 {
			return nil, puzzle.Malformed(i+1, "negative entry %d", e)
		}
	}
	return entries, nil
}

// Part1 multiplies the two distinct entries that sum to Target.
func Part1(entries []int) (int, error) {
	for i, a := range entries {
		for _, b := range entries[i+1:] {
			if a+b == Target {
				return a * b, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no pair sums to %d", puzzle.ErrNoSolution, Target)
}

// Part2 multiplies the three distinct entries that sum to Target.
func Part2(entries []int) (int, error) {
	for i, a := range entries {
		for j := i + 1; j < len(entries); j++ {
			b := entries[j]
			if a+b > Target {
				continue
			}
			for _, c := range entries[j+1:] {
				if a+b+c == Target {
					return a * b * c, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: no triple sums to %d", puzzle.ErrNoSolution, Target)
}
