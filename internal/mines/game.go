package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type State int8

const (
	Playing State = iota
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Game owns the grid of the current session and resolves player actions.
// It is not safe for concurrent use: actions must be fed from one goroutine.
// Only the collaborator passed to [WithTransition] is called from elsewhere.
type Game struct {
	params     GameParams
	grid       *Grid
	state      State
	session    int
	rnd        Rand
	clock      quartz.Clock
	delay      time.Duration
	pending    *Deferred
	renderer   Renderer
	audio      Audio
	transition Transition
}

type Option func(*Game)

func WithRand(r Rand) Option {
	return func(g *Game) { g.rnd = r }
}

func WithClock(c quartz.Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithDelay(d time.Duration) Option {
	return func(g *Game) { g.delay = d }
}

func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

func WithAudio(a Audio) Option {
	return func(g *Game) { g.audio = a }
}

func WithTransition(t Transition) Option {
	return func(g *Game) { g.transition = t }
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGame validates params and starts the first session. Nothing is
// allocated when params are rejected.
func NewGame(params GameParams, opts ...Option) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		params:     params,
		delay:      DefaultTransitionDelay,
		renderer:   nopRenderer,
		audio:      nopAudio,
		transition: nopTransition,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = newRand()
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	if g.delay < 0 {
		return nil, fmt.Errorf("transition delay must not be negative, got %s", g.delay)
	}

	g.start()
	return g, nil
}

func (g *Game) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"session": g.session,
		"state":   g.state.String(),
	})
}

func (g *Game) start() {
	grid, err := NewBoard(g.params, g.rnd)
	if err != nil {
		// params were validated by NewGame
		panic(fmt.Errorf("unable to build board: %w", err))
	}
	g.grid = grid
	g.state = Playing
	g.session++

	g.logger().WithField("seed", g.params.Seed()).Info("session started")
	g.render()
}

func (g *Game) render() {
	g.renderer.Render(g.Snapshot())
}

// schedule arranges for the transition collaborator to receive outcome
// after the configured delay.
func (g *Game) schedule(state State) {
	outcome := Outcome{Session: g.session, State: state}
	g.pending = Schedule(g.clock, g.delay, func() {
		Log.WithFields(logrus.Fields{
			"session": outcome.Session,
			"outcome": outcome.State.String(),
		}).Debug("transition fired")
		g.transition.Transition(outcome)
	}, "mines", "transition")
}

// Reveal resolves a reveal at x, y. It is a no-op unless the session is
// Playing and the cell is in bounds, hidden and unflagged.
func (g *Game) Reveal(x, y int) {
	if g.state != Playing {
		return
	}

	switch g.grid.Reveal(x, y) {
	case Unchanged:
		return
	case Exploded:
		g.audio.Play(Explosion)
		g.state = Lost
		g.logger().WithField("cell", Point{x, y}.String()).Info("game over")
		g.schedule(Lost)
	case Opened:
		g.audio.Play(Click)
		g.checkWin()
	}

	g.render()
}

func (g *Game) checkWin() {
	if !g.grid.Cleared() {
		return
	}
	g.grid.flagMines()
	g.state = Won
	g.logger().Info("winner")
	g.schedule(Won)
}

// ToggleFlag flips the flag at x, y while the session is Playing.
func (g *Game) ToggleFlag(x, y int) {
	if g.state != Playing {
		return
	}
	if !g.grid.ToggleFlag(x, y) {
		return
	}
	g.audio.Play(Click)
	g.render()
}

// Restart cancels any pending transition and replaces the grid with a
// freshly generated one. It is accepted in every state.
func (g *Game) Restart() {
	if g.pending.Cancel() {
		g.logger().Debug("pending transition canceled")
	}
	g.pending = nil
	g.start()
}

// Handle dispatches an action from the input collaborator. Actions aimed
// outside the board are dropped before they reach the grid.
func (g *Game) Handle(a Action) {
	if a.Kind != Restart && !g.params.ValidatePosition(a.X, a.Y) {
		g.logger().WithField("action", a.String()).Debug("position out of bounds")
		return
	}
	switch a.Kind {
	case Reveal:
		g.Reveal(a.X, a.Y)
	case Flag:
		g.ToggleFlag(a.X, a.Y)
	case Restart:
		g.Restart()
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Params() GameParams {
	return g.params
}

func (g *Game) Session() int {
	return g.session
}

func (g *Game) Cell(x, y int) Cell {
	return g.grid.Cell(x, y)
}

func (g *Game) Snapshot() Snapshot {
	flags := g.grid.Flags()
	return Snapshot{
		Width:          g.grid.Width(),
		Height:         g.grid.Height(),
		MineCount:      g.grid.MineCount(),
		State:          g.state,
		Cells:          g.grid.Cells(),
		FlagsPlaced:    flags,
		MinesRemaining: g.grid.MineCount() - flags,
	}
}
