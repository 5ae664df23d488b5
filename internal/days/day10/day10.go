// Package day10 solves "Adapter Array": chain every joltage adapter from the
// outlet to the device and count the ways to do it.
package day10

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"aoc2020/internal/puzzle"
)

// MaxStep is the largest joltage difference an adapter accepts. The device
// is always MaxStep above the highest adapter.
const MaxStep = 3

func init() {
	puzzle.Register(puzzle.Day{
		Number: 10,
		Title:  "Adapter Array",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				chain, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(chain), nil
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				chain, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Arrangements(chain), nil
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: smallSample, Want: "35"},
			{Part: puzzle.PartTwo, Input: smallSample, Want: "8"},
			{Part: puzzle.PartOne, Input: largeSample, Want: "220"},
			{Part: puzzle.PartTwo, Input: largeSample, Want: "19208"},
		},
	})
}

const (
	smallSample = "16\n10\n15\n5\n1\n11\n7\n19\n6\n12\n4\n"
	largeSample = "28\n33\n18\n42\n31\n14\n46\n20\n48\n47\n24\n23\n49\n45\n19\n38\n" +
		"39\n11\n1\n32\n25\n35\n8\n17\n7\n9\n4\n2\n34\n10\n3\n"
)

// Chain is the sorted adapter joltages framed by the outlet (0) and the
// device (max+3).
type Chain []int

// Parse reads the adapters and checks that using all of them is possible:
// ratings are distinct and no gap exceeds MaxStep.
func Parse(input string) (Chain, error) {
	adapters, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("%w: no adapters", puzzle.ErrMalformedInput)
	}
	slices.Sort(adapters)

	chain := make(Chain, 0, len(adapters)+2)
	chain = append(chain, 0)
	chain = append(chain, adapters...)
	chain = append(chain, adapters[len(adapters)-1]+MaxStep)

	for i := 1; i < len(chain); i++ {
		d := chain[i] - chain[i-1]
		if d < 1 || d > MaxStep {
			return nil, fmt.Errorf("%w: cannot step from %d to %d jolts",
				puzzle.ErrMalformedInput, chain[i-1], chain[i])
		}
	}
	return chain, nil
}

// Diffs returns the gap between each consecutive pair in the chain.
func (c Chain) Diffs() []int {
	diffs := make([]int, 0, len(c)-1)
	for i := 1; i < len(c); i++ {
		diffs = append(diffs, c[i]-c[i-1])
	}
	return diffs
}

// Part1 multiplies the count of 1-jolt gaps by the count of 3-jolt gaps.
func Part1(c Chain) int {
	var counts [MaxStep + 1]int
	for _, d := range c.Diffs() {
		counts[d]++
	}
	return counts[1] * counts[3]
}

// Arrangements counts the subsequences of adapters that still connect the
// outlet to the device.
func Arrangements(c Chain) int {
	ways := make([]int, len(c))
	ways[0] = 1
	for i := 1; i < len(c); i++ {
		for j := i - 1; j >= 0 && c[i]-c[j] <= MaxStep; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}

var errTwoJoltGap = errors.New("run counting needs gaps of 1 or 3 only")

// ArrangementsByRuns is the closed-form count: a run of n one-jolt gaps
// between three-jolt gaps can be arranged tribonacci(n) ways. It only holds
// when the chain has no two-jolt gaps, which is true of real inputs.
func ArrangementsByRuns(c Chain) (int, error) {
	total, run := 1, 0
	for _, d := range c.Diffs() {
		switch d {
		case 1:
			run++
		case 3:
			total *= tribonacci(run)
			run = 0
		default:
			return 0, errTwoJoltGap
		}
	}
	return total * tribonacci(run), nil
}

func tribonacci(n int) int {
	a, b, c := 1, 1, 2
	switch n {
	case 0, 1:
		return 1
	case 2:
		return 2
	}
	for i := 3; i <= n; i++ {
		a, b, c = b, c, a+b+c
	}
	return c
}
