package day11

import (
	"context"
	"testing"

	"aoc2020/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, in string) Grid {
	t.Helper()
	g, err := Parse(in)
	require.NoError(t, err)
	return g
}

func step(t *testing.T, in string, r Rule) string {
	t.Helper()
	g := mustParse(t, in)
	next, _ := Step(g, r.Neighbors(g), r.Crowd)
	return next.String()
}

func TestParse(t *testing.T) {
	g := mustParse(t, ".L\nL#\nL.")
	want := Grid{Width: 2, Height: 3, Cells: []Cell{Floor, Empty, Empty, Occupied, Empty, Floor}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ".L\nL#\nL.\n", g.String())
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "L.\nL", "LX\n"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, "%q", in)
	}
}

func TestStep_Small(t *testing.T) {
	assert.Equal(t, "#.\n##\n#.\n", step(t, "L.\nLL\nL.", Adjacent))
	assert.Equal(t, "#.#\n###\n#.#\n", step(t, "L.L\nLLL\nL.L", Adjacent))
}

func TestStep_AdjacentExample(t *testing.T) {
	rounds := []string{
		sample,
		"#.##.##.##\n#######.##\n#.#.#..#..\n####.##.##\n#.##.##.##\n#.#####.##\n..#.#.....\n##########\n#.######.#\n#.#####.##\n",
		"#.LL.L#.##\n#LLLLLL.L#\nL.L.L..L..\n#LLL.LL.L#\n#.LL.LL.LL\n#.LLLL#.##\n..L.L.....\n#LLLLLLLL#\n#.LLLLLL.L\n#.#LLLL.##\n",
		"#.##.L#.##\n#L###LL.L#\nL.#.#..#..\n#L##.##.L#\n#.##.LL.LL\n#.###L#.##\n..#.#.....\n#L######L#\n#.LL###L.L\n#.#L###.##\n",
	}
	for i := 1; i < len(rounds); i++ {
		assert.Equal(t, rounds[i], step(t, rounds[i-1], Adjacent), "round %d", i)
	}
}

func TestStep_VisibleExample(t *testing.T) {
	all := "#.##.##.##\n#######.##\n#.#.#..#..\n####.##.##\n#.##.##.##\n#.#####.##\n..#.#.....\n##########\n#.######.#\n#.#####.##\n"
	assert.Equal(t, all, step(t, sample, Visible))
	assert.Equal(t,
		"#.LL.LL.L#\n#LLLLLL.LL\nL.L.L..L..\nLLLL.LL.LL\nL.LL.LL.LL\nL.LLLLL.LL\n..L.L.....\nLLLLLLLLL#\n#.LLLLLL.L\n#.LLLLL.L#\n",
		step(t, all, Visible))
}

func TestNeighbors_LineOfSight(t *testing.T) {
	g := mustParse(t, "L...L\n.....\nL.L..")
	// Seat 0 sees right to 4, down to 10 and diagonally to 12.
	assert.ElementsMatch(t, []int{4, 10, 12}, Visible.Neighbors(g)[0])
	assert.Empty(t, Adjacent.Neighbors(g)[0])
	assert.Nil(t, Visible.Neighbors(g)[1])
}

func TestSettle_Example(t *testing.T) {
	g := mustParse(t, sample)

	got, err := Settle(context.Background(), g, Adjacent)
	require.NoError(t, err)
	assert.Equal(t, 37, got)

	got, err = Settle(context.Background(), g, Visible)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
}

func TestSettle_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Settle(ctx, mustParse(t, sample), Adjacent)
	assert.ErrorIs(t, err, context.Canceled)
}
