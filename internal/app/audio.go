package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-engine/internal/mines"
)

// bell is the terminal stand-in for sound effects: explosions ring the
// terminal bell, clicks are only logged.
type bell struct {
	w      io.Writer
	logger *logrus.Logger
}

func newBell(w io.Writer, logger *logrus.Logger) *bell {
	return &bell{w: w, logger: logger}
}

func (b *bell) Play(s mines.Sound) {
	b.logger.WithField("sound", s.String()).Debug("play")
	if s != mines.Explosion {
		return
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.logger.WithError(err).Debug("unable to ring bell")
	}
}
