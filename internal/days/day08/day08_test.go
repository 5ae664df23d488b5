package day08

import (
	"context"
	"testing"

	"aoc2020/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse(sample)
	require.NoError(t, err)

	want := Program{
		{Nop, 0}, {Acc, 1}, {Jmp, 4}, {Acc, 3}, {Jmp, -3},
		{Acc, -99}, {Acc, 1}, {Jmp, -4}, {Acc, 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"nop", "mul +2", "acc two"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}

func TestRun(t *testing.T) {
	acc, err := Run(Program{{Acc, 2}, {Nop, 0}, {Acc, -5}})
	require.NoError(t, err)
	assert.Equal(t, -3, acc)

	acc, err = Run(Program{{Acc, 1}, {Jmp, -1}})
	assert.ErrorIs(t, err, ErrLoop)
	assert.Equal(t, 1, acc)

	_, err = Run(Program{{Jmp, -2}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Run(Program{{Jmp, 5}, {Acc, 1}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPart1_Example(t *testing.T) {
	prog, err := Parse(sample)
	require.NoError(t, err)
	got, err := Part1(prog)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = Part1(Program{{Nop, 0}})
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestRepair_Example(t *testing.T) {
	prog, err := Parse(sample)
	require.NoError(t, err)
	got, err := Repair(context.Background(), prog)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	// Repair works on a copy.
	assert.Equal(t, Jmp, prog[7].Op)
}

func TestRepair_NoFix(t *testing.T) {
	_, err := Repair(context.Background(), Program{{Acc, 1}, {Jmp, -1}, {Jmp, -2}})
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestRepair_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Repair(ctx, Program{{Jmp, 0}})
	assert.ErrorIs(t, err, context.Canceled)
}
