// Package day03 solves "Toboggan Trajectory": count trees hit on straight
// slopes through a horizontally repeating forest.
package day03

import (
	"context"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 3,
		Title:  "Toboggan Trajectory",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				f, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(f), nil
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				f, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part2(f), nil
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "7"},
			{Part: puzzle.PartTwo, Input: sample, Want: "336"},
		},
	})
}

const sample = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

// Forest is the map; true marks a tree.
type Forest [][]bool

// Slope is a step of Right columns and Down rows.
type Slope struct{ Right, Down int }

// Slopes are the trajectories multiplied together in part 2.
var Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// Parse reads rows of '.' (open) and '#' (tree). All rows must be equally wide.
func Parse(input string) (Forest, error) {
	var f Forest
	for i, line := range puzzle.Lines(input) {
		row := make([]bool, len(line))
		for x, c := range line {
			switch c {
			case '.':
			case '#':
				row[x] = true
			default:
				return nil, puzzle.Malformed(i+1, "unexpected %q", c)
			}
		}
		if len(f) > 0 && len(row) != len(f[0]) {
			return nil, puzzle.Malformed(i+1, "row width %d, want %d", len(row), len(f[0]))
		}
		if len(row) == 0 {
			return nil, puzzle.Malformed(i+1, "empty row")
		}
		f = append(f, row)
	}
	return f, nil
}

// Trees counts trees hit from the top-left corner until the bottom is passed.
func (f Forest) Trees(s Slope) int {
	if len(f) == 0 || s.Down < 1 {
		return 0
	}
	width := len(f[0])
	n, x := 0, 0
	for y := 0; y < len(f); y += s.Down {
		if f[y][x%width] {
			n++
		}
		x += s.Right
	}
	return n
}

// Part1 counts trees on slope right 3, down 1.
func Part1(f Forest) int {
	return f.Trees(Slope{3, 1})
}

// Part2 multiplies the tree counts of every slope in Slopes.
func Part2(f Forest) int {
	product := 1
	for _, s := range Slopes {
		product *= f.Trees(s)
	}
	return product
}
