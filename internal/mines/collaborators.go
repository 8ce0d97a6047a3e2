package mines

import "fmt"

type Sound int8

const (
	Click Sound = iota + 1
	Explosion
)

func (s Sound) String() string {
	switch s {
	case Click:
		return "click"
	case Explosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session handed to a [Renderer].
type Snapshot struct {
	Width, Height  int
	MineCount      int
	State          State
	Cells          []Cell
	FlagsPlaced    int
	MinesRemaining int
}

func (s Snapshot) Cell(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{Position: Point{x, y}}
	}
	return s.Cells[y*s.Width+x]
}

type Renderer interface {
	Render(Snapshot)
}

type Audio interface {
	Play(Sound)
}

// Outcome is the final state of one session.
type Outcome struct {
	Session int
	State   State
}

func (o Outcome) String() string {
	return fmt.Sprintf("session %d %s", o.Session, o.State)
}

// Transition receives the final outcome once the post-game delay elapses.
// It is called from the timer goroutine.
type Transition interface {
	Transition(Outcome)
}

type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

type AudioFunc func(Sound)

func (f AudioFunc) Play(s Sound) { f(s) }

type TransitionFunc func(Outcome)

func (f TransitionFunc) Transition(o Outcome) { f(o) }

var (
	nopRenderer   = RendererFunc(func(Snapshot) {})
	nopAudio      = AudioFunc(func(Sound) {})
	nopTransition = TransitionFunc(func(Outcome) {})
)
