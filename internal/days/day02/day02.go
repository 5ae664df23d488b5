// Package day02 solves "Password Philosophy": count passwords that satisfy
// their corporate policy under two interpretations.
package day02

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 2,
		Title:  "Password Philosophy",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: solveWith(Part1),
			puzzle.PartTwo: solveWith(Part2),
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "2"},
			{Part: puzzle.PartTwo, Input: sample, Want: "1"},
		},
	})
}

const sample = "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n"

func solveWith(part func([]Policy) int) puzzle.Solver {
	return func(_ context.Context, input string) (any, error) {
		policies, err := Parse(input)
		if err != nil {
			return nil, err
		}
		return part(policies), nil
	}
}

// Policy is one line of the password database.
type Policy struct {
	Lo, Hi   int // bounds (part 1) or 1-based positions (part 2)
	Char     byte
	Password string
}

var policyRx = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): ([a-z]+)$`)

// Parse reads "lo-hi c: password" lines.
func Parse(input string) ([]Policy, error) {
	var out []Policy
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := policyRx.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed(i+1, "bad policy %q", line)
		}
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo < 1 || lo > hi {
			return nil, puzzle.Malformed(i+1, "bad range %d-%d", lo, hi)
		}
		out = append(out, Policy{Lo: lo, Hi: hi, Char: m[3][0], Password: m[4]})
	}
	return out, nil
}

// ValidCount reports whether Char occurs between Lo and Hi times.
func (p Policy) ValidCount() bool {
	n := strings.Count(p.Password, string(p.Char))
	return n >= p.Lo && n <= p.Hi
}

// ValidPosition reports whether exactly one of positions Lo and Hi holds Char.
// Positions past the end of the password never match.
func (p Policy) ValidPosition() bool {
	return p.at(p.Lo) != p.at(p.Hi)
}

func (p Policy) at(pos int) bool {
	return pos <= len(p.Password) && p.Password[pos-1] == p.Char
}

// Part1 counts passwords valid under the occurrence-count policy.
func Part1(policies []Policy) int {
	n := 0
	for _, p := range policies {
		if p.ValidCount() {
			n++
		}
	}
	return n
}

// Part2 counts passwords valid under the position policy.
func Part2(policies []Policy) int {
	n := 0
	for _, p := range policies {
		if p.ValidPosition() {
			n++
		}
	}
	return n
}
