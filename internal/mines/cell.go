package mines

import (
	"fmt"
	"strconv"
)

type CellKind int8

const (
	// Invalid is the zero value. It is never stored in a grid and is only
	// returned for out of bounds lookups.
	Invalid CellKind = iota
	Empty
	Number
	Mine
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Mine:
		return "mine"
	default:
		return "invalid"
	}
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

type Cell struct {
	Position      Point
	Kind          CellKind
	AdjacentMines int
	Revealed      bool
	Flagged       bool
	Exploded      bool
}

func (c Cell) IsMine() bool {
	return c.Kind == Mine
}

func (c Cell) IsValid() bool {
	return c.Kind != Invalid
}

// String renders the cell the way a player would see it.
func (c Cell) String() string {
	switch {
	case c.Kind == Invalid:
		return "!"
	case c.Revealed && c.Exploded:
		return "X"
	case c.Revealed && c.Kind == Mine:
		return "*"
	case c.Revealed && c.Kind == Number:
		return strconv.Itoa(c.AdjacentMines)
	case c.Revealed:
		return "."
	case c.Flagged:
		return "F"
	default:
		return "#"
	}
}
