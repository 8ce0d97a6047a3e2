// Package input turns text commands into game actions.
//
// A command is a verb followed by a position, given either positionally or
// as key=value pairs:
//
//	open 3 4
//	flag x=3 y=4
//	restart
//	quit
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/mines-engine/internal/mines"
)

var (
	ErrQuit       = errors.New("quit")
	ErrEmpty      = errors.New("empty command")
	ErrBadCommand = errors.New("bad command")
)

var shorthands = map[string]mines.ActionKind{
	"o": mines.Reveal,
	"f": mines.Flag,
	"r": mines.Restart,
	"n": mines.Restart,
}

type position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func decodePosition(src map[string][]string) (position, error) {
	positionDecoder := schema.NewDecoder()
	positionDecoder.IgnoreUnknownKeys(true)
	var pos position
	err := positionDecoder.Decode(&pos, src)
	return pos, err
}

// positionArgs maps positional or key=value arguments onto form values.
func positionArgs(args []string) map[string][]string {
	src := make(map[string][]string, len(args))
	keys := []string{"x", "y"}
	for i, arg := range args {
		if k, v, ok := strings.Cut(arg, "="); ok {
			src[strings.ToLower(k)] = append(src[strings.ToLower(k)], v)
		} else if i < len(keys) {
			src[keys[i]] = append(src[keys[i]], arg)
		}
	}
	return src
}

func parseKind(verb string) (mines.ActionKind, error) {
	if kind, ok := shorthands[verb]; ok {
		return kind, nil
	}
	return mines.ParseActionKind(verb)
}

// Parse reads one command line. It returns ErrQuit when the player asks to
// leave and ErrEmpty for blank lines.
func Parse(line string) (mines.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return mines.Action{}, ErrEmpty
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "q", "quit", "exit":
		return mines.Action{}, ErrQuit
	}

	kind, err := parseKind(verb)
	if err != nil {
		return mines.Action{}, fmt.Errorf("%w: %w", ErrBadCommand, err)
	}
	if kind == mines.Restart {
		return mines.Action{Kind: kind}, nil
	}

	pos, err := decodePosition(positionArgs(args))
	if err != nil {
		return mines.Action{}, fmt.Errorf("%w: %s needs a position: %w", ErrBadCommand, verb, err)
	}

	return mines.Action{Kind: kind, X: pos.X, Y: pos.Y}, nil
}

func Usage() string {
	return strings.Join([]string{
		"open X Y    (o, reveal)     reveal a cell",
		"flag X Y    (f)             toggle a flag",
		"restart     (r, n, new)     start a new board",
		"quit        (q, exit)       leave",
	}, "\n")
}
