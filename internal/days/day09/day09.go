// Package day09 solves "Encoding Error": find the XMAS number that breaks the
// sum rule, then the contiguous run that adds up to it.
package day09

import (
	"context"
	"fmt"

	"aoc2020/internal/puzzle"
)

// Preamble is the window length of the real puzzle input.
const Preamble = 25

func init() {
	puzzle.Register(puzzle.Day{
		Number: 9,
		Title:  "Encoding Error",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				nums, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return FirstInvalid(nums, Preamble)
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				nums, err := Parse(input)
				if err != nil {
					return nil, err
				}
				target, err := FirstInvalid(nums, Preamble)
				if err != nil {
					return nil, err
				}
				return Weakness(nums, target)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: longSample, Want: "100"},
			{Part: puzzle.PartTwo, Input: longSample, Want: "25"},
		},
	})
}

// longSample is 1..25 followed by one valid and one invalid number, so it
// works with the full preamble.
var longSample = func() string {
	s := ""
	for i := 1; i <= 25; i++ {
		s += fmt.Sprintf("%d\n", i)
	}
	return s + "49\n100\n"
}()

// Parse reads one non-negative number per line.
func Parse(input string) ([]int, error) {
	nums, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	for i, n := range nums {
		if n < 0 {
			return nil, puzzle.Malformed(i+1, "negative number %d", n)
		}
	}
	return nums, nil
}

// FirstInvalid returns the first number after the preamble that is not the
// sum of two different numbers among the preamble numbers before it.
func FirstInvalid(nums []int, preamble int) (int, error) {
	if preamble < 2 || len(nums) <= preamble {
		return 0, fmt.Errorf("%w: need more than %d numbers, got %d",
			puzzle.ErrMalformedInput, preamble, len(nums))
	}
	for i := preamble; i < len(nums); i++ {
		if !pairSums(nums[i-preamble:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, fmt.Errorf("%w: every number follows the rule", puzzle.ErrNoSolution)
}

func pairSums(window []int, target int) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a != b && a+b == target {
				return true
			}
		}
	}
	return false
}

// Weakness finds the contiguous run of at least two numbers summing to
// target and returns its smallest plus largest element.
func Weakness(nums []int, target int) (int, error) {
	lo, hi, sum := 0, 0, 0
	for {
		switch {
		case sum > target && hi > lo:
			sum -= nums[lo]
			lo++
		case sum == target && hi-lo >= 2:
			run := nums[lo:hi]
			return minOf(run) + maxOf(run), nil
		case hi == len(nums):
			return 0, fmt.Errorf("%w: no run sums to %d", puzzle.ErrNoSolution, target)
		default:
			sum += nums[hi]
			hi++
		}
	}
}

func minOf(run []int) int {
	m := run[0]
	for _, n := range run[1:] {
		m = min(m, n)
	}
	return m
}

func maxOf(run []int) int {
	m := run[0]
	for _, n := range run[1:] {
		m = max(m, n)
	}
	return m
}
