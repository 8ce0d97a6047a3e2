package mines

type RevealResult int8

const (
	Unchanged RevealResult = iota
	Opened
	Exploded
)

func (r RevealResult) String() string {
	switch r {
	case Opened:
		return "opened"
	case Exploded:
		return "exploded"
	default:
		return "unchanged"
	}
}

// Reveal opens the cell at x, y. Out of bounds, revealed and flagged cells
// are left alone. An Empty cell opens its whole 4-connected empty region
// together with the Number cells bordering it; a Mine explodes.
func (g *Grid) Reveal(x, y int) RevealResult {
	c := g.at(x, y)
	if c == nil || c.Revealed || c.Flagged {
		return Unchanged
	}

	switch c.Kind {
	case Mine:
		g.explode(c)
		return Exploded
	case Empty:
		g.flood(x, y)
	default:
		c.Revealed = true
	}
	return Opened
}

var floodOffsets = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// flood reveals cells starting at x, y using an explicit stack. Revealed
// doubles as the visited mark, so every cell is pushed at most once per
// neighbour and popped at most once as unrevealed.
func (g *Grid) flood(x, y int) (opened int) {
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := g.at(p.X, p.Y)
		if c == nil || c.Revealed || c.Kind == Mine {
			continue
		}
		c.Revealed = true
		opened++

		if c.Kind != Empty {
			continue
		}
		for _, d := range floodOffsets {
			n := g.Cell(p.X+d.X, p.Y+d.Y)
			if n.Kind == Invalid || n.Kind == Mine || n.Revealed {
				continue
			}
			stack = append(stack, n.Position)
		}
	}
	return
}

// explode marks the triggering mine and exposes every other mine. Flags are
// kept as they were.
func (g *Grid) explode(c *Cell) {
	c.Revealed = true
	c.Exploded = true
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			g.cells[i].Revealed = true
		}
	}
}

// ToggleFlag flips the flag on an unrevealed cell and reports whether
// anything changed.
func (g *Grid) ToggleFlag(x, y int) bool {
	c := g.at(x, y)
	if c == nil || c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}
