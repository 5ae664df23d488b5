// Package day12 solves "Rain Risk": follow navigation instructions and report
// the ship's Manhattan distance from the start.
package day12

import (
	"context"
	"fmt"
	"strconv"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 12,
		Title:  "Rain Risk",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				return navigate(input, NewShip)
			},
			puzzle.PartTwo: func(_ context.Context, input string) (any, error) {
				return navigate(input, NewWaypointShip)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "25"},
			{Part: puzzle.PartTwo, Input: sample, Want: "286"},
		},
	})
}

const sample = "F10\nN3\nF7\nR90\nF11\n"

// Vec is a position or direction, east and north positive.
type Vec struct {
	East, North int
}

func (v Vec) add(o Vec, n int) Vec {
	return Vec{v.East + o.East*n, v.North + o.North*n}
}

// Right rotates v clockwise by quarter turns.
func (v Vec) Right(quarters int) Vec {
	for range ((quarters % 4) + 4) % 4 {
		v = Vec{v.North, -v.East}
	}
	return v
}

// Manhattan is |east| + |north|.
func (v Vec) Manhattan() int {
	return abs(v.East) + abs(v.North)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var compass = map[byte]Vec{
	'N': {0, 1},
	'S': {0, -1},
	'E': {1, 0},
	'W': {-1, 0},
}

// Action is one navigation instruction such as "F10" or "R90".
type Action struct {
	Kind  byte
	Value int
}

// Parse reads the action list. Turns must be whole quarter turns.
func Parse(input string) ([]Action, error) {
	var actions []Action
	for i, line := range puzzle.Lines(input) {
		if len(line) < 2 {
			return nil, puzzle.Malformed(i+1, "bad action %q", line)
		}
		a := Action{Kind: line[0]}
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 0 {
			return nil, puzzle.Malformed(i+1, "bad value %q", line[1:])
		}
		a.Value = n
		switch a.Kind {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if n%90 != 0 {
				return nil, puzzle.Malformed(i+1, "turn of %d degrees is not a multiple of 90", n)
			}
		default:
			return nil, puzzle.Malformed(i+1, "unknown action %q", a.Kind)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Ship tracks a position and a vector that 'F' moves along. In the plain
// model the vector is the heading and compass moves shift the ship; in the
// waypoint model compass moves shift the vector instead.
type Ship struct {
	Pos      Vec
	Dir      Vec
	Waypoint bool
}

// NewShip faces east.
func NewShip() *Ship {
	return &Ship{Dir: Vec{1, 0}}
}

// NewWaypointShip starts with the waypoint 10 east and 1 north.
func NewWaypointShip() *Ship {
	return &Ship{Dir: Vec{10, 1}, Waypoint: true}
}

// Do applies one action.
func (s *Ship) Do(a Action) {
	switch a.Kind {
	case 'L':
		s.Dir = s.Dir.Right(-a.Value / 90)
	case 'R':
		s.Dir = s.Dir.Right(a.Value / 90)
	case 'F':
		s.Pos = s.Pos.add(s.Dir, a.Value)
	default:
		if s.Waypoint {
			s.Dir = s.Dir.add(compass[a.Kind], a.Value)
		} else {
			s.Pos = s.Pos.add(compass[a.Kind], a.Value)
		}
	}
}

func navigate(input string, newShip func() *Ship) (int, error) {
	actions, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(actions) == 0 {
		return 0, fmt.Errorf("%w: no actions", puzzle.ErrMalformedInput)
	}
	s := newShip()
	for _, a := range actions {
		s.Do(a)
	}
	return s.Pos.Manhattan(), nil
}
