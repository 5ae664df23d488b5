// Package day06 solves "Custom Customs": per group, count the questions
// anyone answered "yes" to, then the questions everyone did.
package day06

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 6,
		Title:  "Custom Customs",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: solveWith(Anyone),
			puzzle.PartTwo: solveWith(Everyone),
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "11"},
			{Part: puzzle.PartTwo, Input: sample, Want: "6"},
		},
	})
}

const sample = "abc\n\na\nb\nc\n\nab\nac\n\na\na\na\na\n\nb\n"

func solveWith(count func([]Group) int) puzzle.Solver {
	return func(_ context.Context, input string) (any, error) {
		groups, err := Parse(input)
		if err != nil {
			return nil, err
		}
		return count(groups), nil
	}
}

// Answers is the set of questions a person answered, bit i for letter 'a'+i.
type Answers uint32

// Group is the answers of every person in one group.
type Group []Answers

// Parse reads blank-line separated groups, one person per line.
func Parse(input string) ([]Group, error) {
	var groups []Group
	for _, block := range puzzle.Blocks(input) {
		var g Group
		for _, person := range strings.Split(block, "\n") {
			var a Answers
			for _, c := range person {
				if c < 'a' || c > 'z' {
					return nil, fmt.Errorf("%w: unexpected %q in %q", puzzle.ErrMalformedInput, c, person)
				}
				a |= 1 << (c - 'a')
			}
			g = append(g, a)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Anyone sums, per group, the questions at least one person answered.
func Anyone(groups []Group) int {
	total := 0
	for _, g := range groups {
		var union Answers
		for _, a := range g {
			union |= a
		}
		total += bits.OnesCount32(uint32(union))
	}
	return total
}

// Everyone sums, per group, the questions every person answered.
func Everyone(groups []Group) int {
	total := 0
	for _, g := range groups {
		all := ^Answers(0)
		for _, a := range g {
			all &= a
		}
		if len(g) > 0 {
			total += bits.OnesCount32(uint32(all))
		}
	}
	return total
}

// anyoneScan counts directly on the text, testing each letter of the alphabet.
func anyoneScan(input string) int {
	total := 0
	for _, group := range puzzle.Blocks(input) {
		for c := 'a'; c <= 'z'; c++ {
			if strings.ContainsRune(group, c) {
				total++
			}
		}
	}
	return total
}

// everyoneScan counts letters whose occurrences match the group size.
// It relies on nobody answering the same question twice.
func everyoneScan(input string) int {
	total := 0
	for _, group := range puzzle.Blocks(input) {
		people := strings.Count(group, "\n") + 1
		for c := 'a'; c <= 'z'; c++ {
			if strings.Count(group, string(c)) == people {
				total++
			}
		}
	}
	return total
}
