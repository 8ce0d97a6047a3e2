package mines

import (
	"fmt"
	"strings"
)

type ActionKind uint8

const (
	Reveal ActionKind = iota + 1
	Flag
	Restart
	lastAction
)

func (k ActionKind) String() string {
	switch k {
	case Reveal:
		return "Reveal"
	case Flag:
		return "Flag"
	case Restart:
		return "Restart"
	default:
		return fmt.Sprintf("ActionKind(%d)", k)
	}
}

var ErrBadAction error

func init() {
	var allowed []string
	for i := 1; i < int(lastAction); i++ {
		allowed = append(allowed, "'"+ActionKind(i).String()+"'")
	}
	ErrBadAction = fmt.Errorf(
		"action must be one of %s",
		strings.ToLower(strings.Join(allowed, ", ")),
	)
}

func ParseActionKind(s string) (kind ActionKind, err error) {
	switch strings.ToLower(s) {
	case "reveal", "open":
		kind = Reveal
	case "flag":
		kind = Flag
	case "restart", "new":
		kind = Restart
	default:
		err = ErrBadAction
	}
	return
}

// Action is a player request as produced by an input collaborator. X and Y
// are ignored for Restart.
type Action struct {
	Kind ActionKind
	X, Y int
}

func (a Action) String() string {
	if a.Kind == Restart {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%d, %d)", a.Kind, a.X, a.Y)
}
