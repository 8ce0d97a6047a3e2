package mines

import (
	"fmt"
	"strings"
)

// Grid owns the cells of one session. Cells are stored row by row and
// addressed as y*width+x.
type Grid struct {
	width, height int
	mineCount     int
	cells         []Cell
}

// NewGrid allocates a width x height grid of unrevealed Empty cells.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 {
		return nil, &ParamsError{"width", fmt.Sprintf("must be positive, got %d", width)}
	}
	if height <= 0 {
		return nil, &ParamsError{"height", fmt.Sprintf("must be positive, got %d", height)}
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := range height {
		for x := range width {
			g.cells[y*width+x] = Cell{
				Position: Point{x, y},
				Kind:     Empty,
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int     { return g.width }
func (g *Grid) Height() int    { return g.height }
func (g *Grid) MineCount() int { return g.mineCount }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

// Cell returns a copy of the cell at x, y, or the Invalid sentinel when the
// position is outside the grid.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{Position: Point{x, y}}
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) at(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

func (g *Grid) count(pred func(Cell) bool) (n int) {
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return
}

func (g *Grid) Flags() int {
	return g.count(func(c Cell) bool { return c.Flagged })
}

func (g *Grid) Mines() int {
	return g.count(Cell.IsMine)
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			fmt.Fprint(&b, g.cells[y*g.width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
