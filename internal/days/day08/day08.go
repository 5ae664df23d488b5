// Package day08 solves "Handheld Halting": a three-opcode console program
// either loops forever or falls off its end.
package day08

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc2020/internal/logging"
	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 8,
		Title:  "Handheld Halting",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: func(_ context.Context, input string) (any, error) {
				prog, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Part1(prog)
			},
			puzzle.PartTwo: func(ctx context.Context, input string) (any, error) {
				prog, err := Parse(input)
				if err != nil {
					return nil, err
				}
				return Repair(ctx, prog)
			},
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "5"},
			{Part: puzzle.PartTwo, Input: sample, Want: "8"},
		},
	})
}

const sample = "nop +0\nacc +1\njmp +4\nacc +3\njmp -3\nacc -99\nacc +1\njmp -4\nacc +6\n"

// Op is an instruction opcode.
type Op uint8

const (
	Nop Op = iota
	Acc
	Jmp
)

var opNames = map[string]Op{"nop": Nop, "acc": Acc, "jmp": Jmp}

func (o Op) String() string {
	switch o {
	case Acc:
		return "acc"
	case Jmp:
		return "jmp"
	default:
		return "nop"
	}
}

// Instruction is one line of the boot code.
type Instruction struct {
	Op  Op
	Arg int
}

// Program is the boot code.
type Program []Instruction

// Parse reads "op ±N" lines.
func Parse(input string) (Program, error) {
	var prog Program
	for i, line := range puzzle.Lines(input) {
		name, arg, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			return nil, puzzle.Malformed(i+1, "bad instruction %q", line)
		}
		op, known := opNames[name]
		if !known {
			return nil, puzzle.Malformed(i+1, "unknown opcode %q", name)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, puzzle.Malformed(i+1, "bad argument %q", arg)
		}
		prog = append(prog, Instruction{Op: op, Arg: n})
	}
	return prog, nil
}

var (
	// ErrLoop means an instruction was about to execute a second time.
	ErrLoop = errors.New("infinite loop")
	// ErrOutOfBounds means a jump landed outside the program.
	ErrOutOfBounds = errors.New("jump out of bounds")
)

// Run executes prog until it terminates by reaching the instruction just
// past the end, or until an instruction would run twice. It always returns
// the accumulator at the point execution stopped.
func Run(prog Program) (int, error) {
	seen := make([]bool, len(prog))
	acc, pc := 0, 0
	for pc != len(prog) {
		if pc < 0 || pc > len(prog) {
			return acc, fmt.Errorf("%w: pc=%d", ErrOutOfBounds, pc)
		}
		if seen[pc] {
			return acc, fmt.Errorf("%w at pc=%d", ErrLoop, pc)
		}
		seen[pc] = true

		ins := prog[pc]
		switch ins.Op {
		case Acc:
			acc += ins.Arg
			pc++
		case Jmp:
			pc += ins.Arg
		default:
			pc++
		}
	}
	return acc, nil
}

// Part1 returns the accumulator right before the loop repeats.
func Part1(prog Program) (int, error) {
	acc, err := Run(prog)
	if err == nil {
		return 0, fmt.Errorf("%w: program terminates without looping", puzzle.ErrNoSolution)
	}
	if !errors.Is(err, ErrLoop) {
		return 0, err
	}
	return acc, nil
}

// Repair flips exactly one jmp/nop so the program terminates and returns
// the final accumulator.
func Repair(ctx context.Context, prog Program) (int, error) {
	patched := append(Program(nil), prog...)
	for i, ins := range prog {
		if ins.Op == Acc {
			continue
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		patched[i].Op = swap(ins.Op)
		acc, err := Run(patched)
		patched[i].Op = ins.Op
		if err == nil {
			logging.SolverDebug("day 8: instruction %d was %s", i, ins.Op)
			return acc, nil
		}
	}
	return 0, fmt.Errorf("%w: no single jmp/nop flip terminates", puzzle.ErrNoSolution)
}

func swap(o Op) Op {
	if o == Jmp {
		return Nop
	}
	return Jmp
}
