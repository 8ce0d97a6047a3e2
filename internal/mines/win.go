package mines

// Cleared reports whether every non-mine cell has been revealed.
func (g *Grid) Cleared() bool {
	for _, c := range g.cells {
		if c.Kind != Mine && !c.Revealed {
			return false
		}
	}
	return true
}

func (g *Grid) flagMines() {
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			g.cells[i].Flagged = true
		}
	}
}
