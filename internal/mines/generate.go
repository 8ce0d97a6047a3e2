package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Rand is the randomness source used for mine placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// PlaceMines scatters mineCount mines over g. A draw that lands on a mine
// scans forward row by row, wrapping to the origin, until a free cell is
// found. Placement is rejected up front when the grid cannot hold the mines.
func PlaceMines(g *Grid, mineCount int, r Rand) error {
	params := GameParams{Width: g.width, Height: g.height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return err
	}
	if existing := g.Mines(); existing != 0 {
		return fmt.Errorf("grid already holds %d mines", existing)
	}

	for range mineCount {
		x := r.IntN(g.width)
		y := r.IntN(g.height)

		i := y*g.width + x
		for g.cells[i].Kind == Mine {
			i = (i + 1) % len(g.cells)
		}
		g.cells[i].Kind = Mine
	}
	g.mineCount = mineCount

	return nil
}

// CountMines returns the number of mines among the 8 neighbours of x, y.
func (g *Grid) CountMines(x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Cell(x+dx, y+dy).Kind == Mine {
				n++
			}
		}
	}
	return n
}

// CalculateNumbers sets the adjacency count of every non-mine cell and
// promotes cells with at least one neighbouring mine to Number.
func CalculateNumbers(g *Grid) {
	for y := range g.height {
		for x := range g.width {
			c := &g.cells[y*g.width+x]
			if c.Kind == Mine {
				continue
			}
			c.AdjacentMines = g.CountMines(x, y)
			if c.AdjacentMines > 0 {
				c.Kind = Number
			} else {
				c.Kind = Empty
			}
		}
	}
}

// NewBoard builds a fully initialised grid: empty cells, mines, numbers.
func NewBoard(params GameParams, r Rand) (*Grid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(params.Width, params.Height)
	if err != nil {
		return nil, err
	}
	if err := PlaceMines(g, params.MineCount, r); err != nil {
		return nil, fmt.Errorf("unable to place mines: %w", err)
	}
	CalculateNumbers(g)

	Log.WithFields(logrus.Fields{
		"width":      params.Width,
		"height":     params.Height,
		"mine_count": params.MineCount,
	}).Debug("generated board")

	return g, nil
}
