// Package day11 solves "Seating System": a seat automaton run until nobody
// moves.
package day11

import (
	"context"
	"fmt"
	"strings"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 11,
		Title:  "Seating System",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(ctx context.Context, input string) (any, error) {
				g, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Settle(ctx, g, Adjacent)
			},
			puzzle.PartTwo: func(ctx context.Context, input string) (any, error) {
				g, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Settle(ctx, g, Visible)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "37"},
			{Part: puzzle.PartTwo, Input: sample, Want: "26"},
		},
	})
}

const sample = "L.LL.LL.LL\nLLLLLLL.LL\nL.L.L..L..\nLLLL.LL.LL\nL.LL.LL.LL\n" +
	"L.LLLLL.LL\n..L.L.....\nLLLLLLLLLL\nL.LLLLLL.L\nL.LLLLL.LL\n"

// Cell is one position of the waiting area.
type Cell byte

const (
	Floor    Cell = '.'
	Empty    Cell = 'L'
	Occupied Cell = '#'
)

// Grid is a rectangular seat layout stored row-major.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

// Parse reads a rectangular grid of '.', 'L' and '#'.
func Parse(input string) (Grid, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 || lines[0] == "" {
		return Grid{}, fmt.Errorf("%w: empty grid", puzzle.ErrMalformedInput)
	}
	g := Grid{Width: len(lines[0]), Height: len(lines)}
	g.Cells = make([]Cell, 0, g.Width*g.Height)
	for i, line := range lines {
		if len(line) != g.Width {
			return Grid{}, puzzle.Malformed(i+1, "row has %d cells, want %d", len(line), g.Width)
		}
		for _, r := range []byte(line) {
			switch c := Cell(r); c {
			case Floor, Empty, Occupied:
				g.Cells = append(g.Cells, c)
			default:
				return Grid{}, puzzle.Malformed(i+1, "unexpected cell %q", r)
			}
		}
	}
	return g, nil
}

func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for _, c := range g.Cells[y*g.Width : (y+1)*g.Width] {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) at(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Floor, false
	}
	return g.Cells[y*g.Width+x], true
}

// Occupied counts occupied seats.
func (g Grid) Occupied() int {
	n := 0
	for _, c := range g.Cells {
		if c == Occupied {
			n++
		}
	}
	return n
}

// Rule decides which seats a seat looks at and how many occupied ones make
// a sitter leave.
type Rule struct {
	Name        string
	LineOfSight bool
	Crowd       int
}

var (
	// Adjacent looks at the 8 surrounding cells.
	Adjacent = Rule{Name: "adjacent", Crowd: 4}
	// Visible looks at the first seat in each of the 8 directions.
	Visible = Rule{Name: "visible", LineOfSight: true, Crowd: 5}
)

var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns, for every seat, the indices of the seats it watches.
// Floor never changes, so the lists hold for every generation.
func (r Rule) Neighbors(g Grid) [][]int {
	out := make([][]int, len(g.Cells))
	for i, c := range g.Cells {
		if c == Floor {
			continue
		}
		x, y := i%g.Width, i/g.Width
		for _, d := range directions {
			nx, ny := x+d[0], y+d[1]
			for {
				cell, ok := g.at(nx, ny)
				if !ok {
					break
				}
				if cell != Floor {
					out[i] = append(out[i], ny*g.Width+nx)
					break
				}
				if !r.LineOfSight {
					break
				}
				nx, ny = nx+d[0], ny+d[1]
			}
		}
	}
	return out
}

// Step applies one generation to g and reports whether any seat changed.
func Step(g Grid, neighbors [][]int, crowd int) (Grid, bool) {
	next := Grid{Width: g.Width, Height: g.Height, Cells: make([]Cell, len(g.Cells))}
	changed := false
	for i, c := range g.Cells {
		next.Cells[i] = c
		if c == Floor {
			continue
		}
		n := 0
		for _, j := range neighbors[i] {
			if g.Cells[j] == Occupied {
				n++
			}
		}
		switch {
		case c == Empty && n == 0:
			next.Cells[i] = Occupied
			changed = true
		case c == Occupied && n >= crowd:
			next.Cells[i] = Empty
			changed = true
		}
	}
	return next, changed
}

// Settle runs the automaton until a generation changes nothing and returns
// the number of occupied seats.
func Settle(ctx context.Context, g Grid, r Rule) (int, error) {
	neighbors := r.Neighbors(g)
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		next, changed := Step(g, neighbors, r.Crowd)
		if !changed {
			logging.SolverDebug("day 11: %s rule stable after %d rounds", r.Name, round-1)
			return g.Occupied(), nil
		}
		g = next
	}
}
