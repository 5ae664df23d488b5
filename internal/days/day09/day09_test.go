package day09

import (
	"testing"

	"aoc2020/internal/puzzle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "35\n20\n15\n25\n47\n40\n62\n55\n65\n95\n102\n117\n150\n182\n127\n219\n299\n277\n309\n576\n"

func TestParse(t *testing.T) {
	nums, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{35, 20, 15, 25, 47, 40, 62, 55, 65, 95, 102, 117, 150, 182, 127, 219, 299, 277, 309, 576}, nums)

	_, err = Parse("1\n-2\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestFirstInvalid_Example(t *testing.T) {
	nums, err := Parse(sample)
	require.NoError(t, err)
	got, err := FirstInvalid(nums, 5)
	require.NoError(t, err)
	assert.Equal(t, 127, got)
}

func TestFirstInvalid_DistinctNumbers(t *testing.T) {
	// 10 is only reachable as 5+5, and 5 appears once.
	got, err := FirstInvalid([]int{1, 2, 5, 10}, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestFirstInvalid_Errors(t *testing.T) {
	_, err := FirstInvalid([]int{1, 2, 3}, 5)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = FirstInvalid([]int{1, 2, 3, 5}, 2)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestWeakness_Example(t *testing.T) {
	nums, err := Parse(sample)
	require.NoError(t, err)
	got, err := Weakness(nums, 127)
	require.NoError(t, err)
	assert.Equal(t, 62, got)
}

func TestWeakness_NeedsTwoNumbers(t *testing.T) {
	_, err := Weakness([]int{4, 9, 20}, 9)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)

	got, err := Weakness([]int{4, 9, 20, 3, 6}, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestLongSample(t *testing.T) {
	nums, err := Parse(longSample)
	require.NoError(t, err)

	target, err := FirstInvalid(nums, Preamble)
	require.NoError(t, err)
	assert.Equal(t, 100, target)

	got, err := Weakness(nums, target)
	require.NoError(t, err)
	assert.Equal(t, 9+16, got)
}
