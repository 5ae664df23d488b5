package day13

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

	want := Notes{
		Earliest: 939,
		Buses:    []Bus{{7, 0}, {13, 1}, {59, 4}, {31, 6}, {19, 7}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"939", "abc\n7,13", "939\nx,x", "939\n7,0", "939\n7,q"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}

func TestWait(t *testing.T) {
	assert.Equal(t, 5, Bus{ID: 59}.Wait(939))
	assert.Equal(t, 0, Bus{ID: 7}.Wait(945))
}

func TestPart1_Example(t *testing.T) {
	n, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 295, Part1(n))
}

func TestPart1_BusAtEarliest(t *testing.T) {
	// A bus leaving exactly at the earliest timestamp is a zero wait.
	n, err := Parse("945\n13,7,x,59")
	require.NoError(t, err)
	assert.Equal(t, 0, Part1(n))
}

func TestContest_Examples(t *testing.T) {
	tests := []struct {
		schedule string
		want     int
	}{
		{"7,13,x,x,59,x,31,19", 1068781},
		{"17,x,13,19", 3417},
		{"67,7,59,61", 754018},
		{"67,x,7,59,61", 779210},
		{"67,7,x,59,61", 1261476},
		{"1789,37,47,1889", 1202161486},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			buses, err := ParseBuses(tt.schedule)
			require.NoError(t, err)
			got, err := Contest(context.Background(), buses)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContest_Impossible(t *testing.T) {
	// Both buses share a factor of 2 and need opposite parity.
	_, err := Contest(context.Background(), []Bus{{4, 0}, {6, 1}})
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
