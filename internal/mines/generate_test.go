package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minePositions(g *Grid) []Point {
	var ps []Point
	for _, c := range g.Cells() {
		if c.IsMine() {
			ps = append(ps, c.Position)
		}
	}
	return ps
}

func TestPlaceMinesCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"9x9(10)", GameParams{Width: 9, Height: 9, MineCount: 10}},
		{"9x9(80)", GameParams{Width: 9, Height: 9, MineCount: 80}},
		{"16x16(40)", GameParams{Width: 16, Height: 16, MineCount: 40}},
		{"30x16(99)", GameParams{Width: 30, Height: 16, MineCount: 99}},
		{"30x16(479)", GameParams{Width: 30, Height: 16, MineCount: 479}},
		{"1x2(1)", GameParams{Width: 1, Height: 2, MineCount: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				g, err := NewGrid(test.params.Width, test.params.Height)
				require.NoError(t, err)
				require.NoError(t, PlaceMines(g, test.params.MineCount, r))
				assert.Equal(t, test.params.MineCount, g.Mines())
				assert.Equal(t, test.params.MineCount, g.MineCount())
			}
		})
	}
}

func TestPlaceMinesForwardScan(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	// (1,1) twice, then (2,2) twice: the repeats scan forward, the last one
	// wrapping from the bottom right corner to the origin.
	r := &seqRand{vals: []int{1, 1, 1, 1, 2, 2, 2, 2}}
	require.NoError(t, PlaceMines(g, 4, r))

	assert.ElementsMatch(t,
		[]Point{{1, 1}, {2, 1}, {2, 2}, {0, 0}},
		minePositions(g),
	)
}

func TestPlaceMinesScanWrapsRows(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	r := &seqRand{vals: []int{2, 0, 2, 0}}
	require.NoError(t, PlaceMines(g, 2, r))

	assert.ElementsMatch(t, []Point{{2, 0}, {0, 1}}, minePositions(g))
}

func TestPlaceMinesAlwaysColliding(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	require.NoError(t, PlaceMines(g, 15, &seqRand{vals: []int{0}}))

	assert.Equal(t, 15, g.Mines())
	assert.Equal(t, Empty, g.Cell(3, 3).Kind)
}

func TestPlaceMinesRejectsBeforePlacing(t *testing.T) {
	tests := []struct {
		name      string
		mineCount int
	}{
		{"zero", 0},
		{"negative", -1},
		{"full", 9},
		{"overfull", 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewGrid(3, 3)
			require.NoError(t, err)
			before := g.Cells()

			r := &seqRand{vals: []int{0}}
			err = PlaceMines(g, test.mineCount, r)
			assert.True(t, errors.Is(err, ErrInvalidParams))
			assert.Equal(t, before, g.Cells())
			assert.Equal(t, 0, r.i, "no draws expected")
		})
	}
}

func TestPlaceMinesTwice(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, PlaceMines(g, 2, &seqRand{vals: []int{0, 1}}))
	assert.Error(t, PlaceMines(g, 2, &seqRand{vals: []int{0, 1}}))
	assert.Equal(t, 2, g.Mines())
}

func TestCalculateNumbers(t *testing.T) {
	g := layoutGrid(t,
		"*..",
		"...",
		"..*",
	)

	want := [][]struct {
		kind CellKind
		n    int
	}{
		{{Mine, 0}, {Number, 1}, {Empty, 0}},
		{{Number, 1}, {Number, 2}, {Number, 1}},
		{{Empty, 0}, {Number, 1}, {Mine, 0}},
	}

	for y, row := range want {
		for x, w := range row {
			c := g.Cell(x, y)
			assert.Equal(t, w.kind, c.Kind, "kind at %d:%d", x, y)
			assert.Equal(t, w.n, c.AdjacentMines, "count at %d:%d", x, y)
		}
	}
}

func TestCalculateNumbersMatchesNeighbourhood(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		g, err := NewBoard(GameParams{Width: 12, Height: 7, MineCount: 25}, r)
		require.NoError(t, err)

		for _, c := range g.Cells() {
			if c.IsMine() {
				assert.Equal(t, 0, c.AdjacentMines)
				continue
			}
			n := 0
			for _, o := range g.Cells() {
				dx, dy := o.Position.X-c.Position.X, o.Position.Y-c.Position.Y
				if o.IsMine() && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
					n++
				}
			}
			assert.Equal(t, n, c.AdjacentMines)
			if n > 0 {
				assert.Equal(t, Number, c.Kind)
			} else {
				assert.Equal(t, Empty, c.Kind)
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := NewBoard(DefaultParams(), r)
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, g.Width())
	assert.Equal(t, DefaultHeight, g.Height())
	assert.Equal(t, DefaultMineCount, g.Mines())
	for _, c := range g.Cells() {
		assert.False(t, c.Revealed || c.Flagged || c.Exploded)
	}
}

func TestNewBoardRejectsInvalidParams(t *testing.T) {
	g, err := NewBoard(GameParams{Width: 2, Height: 2, MineCount: 4}, &seqRand{vals: []int{0}})
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrInvalidParams))
}
