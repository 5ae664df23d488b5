package all

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2020/internal/puzzle"
)

func TestEveryDayRegistered(t *testing.T) {
	days := puzzle.Days()
	require.Len(t, days, 13)
	for i, d := range days {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Title, "day %d", d.Number)
		for _, p := range puzzle.Parts {
			_, err := d.Solver(p)
			assert.NoError(t, err, "day %d part %d", d.Number, p)
		}
	}
}

func TestExamples(t *testing.T) {
	for _, d := range puzzle.Days() {
		require.NotEmpty(t, d.Examples, "day %d has no examples", d.Number)
		for i, ex := range d.Examples {
			t.Run(fmt.Sprintf("day%02d/part%d/%d", d.Number, ex.Part, i), func(t *testing.T) {
				got, err := d.Solve(context.Background(), ex.Part, ex.Input)
				require.NoError(t, err)
				assert.Equal(t, ex.Want, got)
			})
		}
	}
}

func TestMalformedInputIsReported(t *testing.T) {
	for _, d := range puzzle.Days() {
		_, err := d.Solve(context.Background(), puzzle.PartOne, "%%% not a puzzle %%%\n")
		assert.Error(t, err, "day %d accepted garbage", d.Number)
	}
}
