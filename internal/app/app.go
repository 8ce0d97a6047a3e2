package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/mines-engine/internal/config"
	"github.com/vancomm/mines-engine/internal/input"
	"github.com/vancomm/mines-engine/internal/mines"
	"github.com/vancomm/mines-engine/internal/render"
)

type App struct {
	logger *logrus.Logger
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	clock  quartz.Clock
	styles render.Styles
}

func New(logger *logrus.Logger, cfg config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		logger: logger,
		cfg:    cfg,
		in:     in,
		out:    out,
		clock:  quartz.NewReal(),
		styles: render.DefaultStyles(),
	}
}

func (a *App) newRand() mines.Rand {
	if a.cfg.Seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*a.cfg.Seed, 0))
}

func (a *App) newGame(outcomes chan<- mines.Outcome) (*mines.Game, error) {
	opts := []mines.Option{
		mines.WithClock(a.clock),
		mines.WithDelay(a.cfg.TransitionDelay.Duration),
		mines.WithRenderer(render.New(a.out, a.styles)),
		mines.WithAudio(newBell(a.out, a.logger)),
		mines.WithTransition(mines.TransitionFunc(func(o mines.Outcome) {
			select {
			case outcomes <- o:
			default:
				a.logger.WithField("outcome", o.String()).Warn("dropped transition")
			}
		})),
	}
	if r := a.newRand(); r != nil {
		opts = append(opts, mines.WithRand(r))
	}
	return mines.NewGame(a.cfg.Board, opts...)
}

// scan feeds lines from r until r is exhausted or ctx is done. A read that
// is already blocked is not interrupted.
func scan(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

// Start runs one play session until the player quits, input ends or ctx is
// canceled. Only the loop goroutine touches the game; the transition
// collaborator hands outcomes back to it over a channel.
func (a *App) Start(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger.WithFields(a.cfg.Fields()).Debug("config")

	outcomes := make(chan mines.Outcome, 4)
	game, err := a.newGame(outcomes)
	if err != nil {
		return fmt.Errorf("unable to start game: %w", err)
	}
	fmt.Fprintln(a.out, input.Usage())

	actions := make(chan mines.Action)
	g, gCtx := errgroup.WithContext(ctx)

	lines := make(chan string)
	go scan(gCtx, a.in, lines)

	g.Go(func() error {
		defer close(actions)
		for {
			select {
			case <-gCtx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				action, err := input.Parse(line)
				switch {
				case errors.Is(err, input.ErrQuit):
					return nil
				case errors.Is(err, input.ErrEmpty):
					continue
				case err != nil:
					fmt.Fprintln(a.out, err)
					continue
				}
				select {
				case actions <- action:
				case <-gCtx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-gCtx.Done():
				return nil
			case action, ok := <-actions:
				if !ok {
					return nil
				}
				a.logger.WithField("action", action.String()).Debug("handling action")
				game.Handle(action)
			case outcome := <-outcomes:
				a.finish(game, outcome)
			}
		}
	})

	err = g.Wait()
	a.logger.WithFields(logrus.Fields{
		"session": game.Session(),
		"state":   game.State().String(),
	}).Info("leaving")
	return err
}

// finish shows the end of session screen. Outcomes from a session that has
// since been restarted are dropped.
func (a *App) finish(game *mines.Game, outcome mines.Outcome) {
	if outcome.Session != game.Session() || outcome.State != game.State() {
		a.logger.WithField("outcome", outcome.String()).Debug("stale transition")
		return
	}
	switch outcome.State {
	case mines.Lost:
		fmt.Fprintln(a.out, "GAME OVER. Type 'restart' to play again or 'quit' to leave.")
	case mines.Won:
		fmt.Fprintln(a.out, "YOU WIN! Type 'restart' to play again or 'quit' to leave.")
	}
}
