package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/mines-engine/internal/mines"
)

type Styles struct {
	Hidden   lipgloss.Style
	Flag     lipgloss.Style
	Empty    lipgloss.Style
	Mine     lipgloss.Style
	Exploded lipgloss.Style
	Numbers  [9]lipgloss.Style
	Header   lipgloss.Style
	Axis     lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{
		Hidden:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Flag:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Mine:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Exploded: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
		Header:   lipgloss.NewStyle().Bold(true),
		Axis:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	for i, c := range []string{"7", "12", "10", "9", "13", "1", "14", "15", "8"} {
		s.Numbers[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(i > 0)
	}
	return s
}

// Renderer draws snapshots as text. It implements [mines.Renderer].
type Renderer struct {
	w      io.Writer
	styles Styles
}

var _ mines.Renderer = (*Renderer)(nil)

func New(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

func (r *Renderer) Render(s mines.Snapshot) {
	fmt.Fprint(r.w, r.Board(s))
}

func (r *Renderer) cell(c mines.Cell) string {
	glyph := c.String()
	switch {
	case c.Revealed && c.Exploded:
		return r.styles.Exploded.Render(glyph)
	case c.Revealed && c.IsMine():
		return r.styles.Mine.Render(glyph)
	case c.Revealed && c.Kind == mines.Number:
		return r.styles.Numbers[c.AdjacentMines].Render(glyph)
	case c.Revealed:
		return r.styles.Empty.Render(glyph)
	case c.Flagged:
		return r.styles.Flag.Render(glyph)
	default:
		return r.styles.Hidden.Render(glyph)
	}
}

func status(s mines.Snapshot) string {
	switch s.State {
	case mines.Lost:
		return "BOOM! game over"
	case mines.Won:
		return "board cleared, you win"
	default:
		return "playing"
	}
}

// Board returns the text for one snapshot: a status line, a column axis
// and one row per grid line.
func (r *Renderer) Board(s mines.Snapshot) string {
	var b strings.Builder

	header := fmt.Sprintf("%dx%d  mines %d  flags %d  left %d  %s",
		s.Width, s.Height, s.MineCount, s.FlagsPlaced, s.MinesRemaining, status(s))
	fmt.Fprintln(&b, r.styles.Header.Render(header))

	cols := make([]string, s.Width)
	for x := range s.Width {
		cols[x] = fmt.Sprintf("%2d", x%100)
	}
	fmt.Fprintln(&b, r.styles.Axis.Render("   "+strings.Join(cols, "")))

	for y := range s.Height {
		fmt.Fprint(&b, r.styles.Axis.Render(fmt.Sprintf("%2d ", y%100)))
		for x := range s.Width {
			fmt.Fprint(&b, " "+r.cell(s.Cell(x, y)))
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
