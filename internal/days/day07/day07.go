// Package day07 solves "Handy Haversacks": bag containment rules form a
// DAG; walk it upwards for part 1 and downwards for part 2.
package day07

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc2020/internal/puzzle"
)

// Target is the bag both parts ask about.
const Target = "shiny gold"

func init() {
	puzzle.Register(puzzle.Day{
		Number: 7,
		Title:  "Handy Haversacks",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				rules, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return rules.Holders(Target), nil
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				rules, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return rules.Inside(Target)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "4"},
			{Part: puzzle.PartTwo, Input: sample, Want: "32"},
		},
	})
}

const sample = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

// Content is Count bags of one Color held directly inside another bag.
type Content struct {
	Count int
	Color string
}

// Rules maps an outer bag color to what it must directly contain.
type Rules map[string][]Content

var contentRx = regexp.MustCompile(`^(\d+) (.+?) bags?$`)

// Parse reads "X bags contain N Y bag(s), ... ." lines. Every referenced
// color needs its own rule and no bag may end up inside itself.
func Parse(input string) (Rules, error) {
	rules := Rules{}
	lineOf := map[string]int{}
	var order []string
	for i, line := range puzzle.Lines(input) {
		outer, inner, ok := strings.Cut(strings.TrimSuffix(strings.TrimSpace(line), "."), " bags contain ")
		if !ok {
			return nil, puzzle.Malformed(i+1, "bad rule %q", line)
		}
		if _, dup := rules[outer]; dup {
			return nil, puzzle.Malformed(i+1, "duplicate rule for %q", outer)
		}
		var contents []Content
		if inner != "no other bags" {
			for _, part := range strings.Split(inner, ", ") {
				m := contentRx.FindStringSubmatch(part)
				if m == nil {
					return nil, puzzle.Malformed(i+1, "bad content %q", part)
				}
				n, _ := strconv.Atoi(m[1])
				contents = append(contents, Content{Count: n, Color: m[2]})
			}
		}
		rules[outer] = contents
		lineOf[outer] = i + 1
		order = append(order, outer)
	}

	for _, outer := range order {
		for _, c := range rules[outer] {
			if _, ok := rules[c.Color]; !ok {
				return nil, puzzle.Malformed(lineOf[outer], "no rule for %q", c.Color)
			}
		}
	}
	if color, ok := rules.cycle(order); ok {
		return nil, puzzle.Malformed(lineOf[color], "%q contains itself", color)
	}
	return rules, nil
}

// cycle returns a color on a containment cycle, visiting roots in order.
func (r Rules) cycle(order []string) (string, bool) {
	const (
		unvisited = iota
		active
		done
	)
	state := map[string]int{}
	var visit func(string) (string, bool)
	visit = func(c string) (string, bool) {
		switch state[c] {
		case active:
			return c, true
		case done:
			return "", false
		}
		state[c] = active
		for _, in := range r[c] {
			if found, ok := visit(in.Color); ok {
				return found, true
			}
		}
		state[c] = done
		return "", false
	}
	for _, c := range order {
		if found, ok := visit(c); ok {
			return found, true
		}
	}
	return "", false
}

// Holders counts the colors, other than color itself, that can eventually
// contain color.
func (r Rules) Holders(color string) int {
	parents := map[string][]string{}
	for outer, contents := range r {
		for _, c := range contents {
			parents[c.Color] = append(parents[c.Color], outer)
		}
	}

	seen := map[string]bool{}
	stack := []string{color}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range parents[cur] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}
	delete(seen, color)
	return len(seen)
}

// Inside counts the bags held, at any depth, by one bag of color.
func (r Rules) Inside(color string) (int, error) {
	memo := map[string]int{}
	visiting := map[string]bool{}

	var total func(string) (int, error)
	total = func(c string) (int, error) {
		if n, ok := memo[c]; ok {
			return n, nil
		}
		contents, ok := r[c]
		if !ok {
			return 0, fmt.Errorf("%w: no rule for %q", puzzle.ErrMalformedInput, c)
		}
		if visiting[c] {
			return 0, fmt.Errorf("%w: %q contains itself", puzzle.ErrMalformedInput, c)
		}
		visiting[c] = true
		defer delete(visiting, c)

		n := 0
		for _, in := range contents {
			sub, err := total(in.Color)
			if err != nil {
				return 0, err
			}
			n += in.Count * (1 + sub)
		}
		memo[c] = n
		return n, nil
	}
	return total(color)
}
