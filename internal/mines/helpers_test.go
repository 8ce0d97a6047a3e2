package mines

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// layoutGrid builds a grid from rows where '*' marks a mine.
func layoutGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width())
		for x, ch := range row {
			if ch == '*' {
				g.at(x, y).Kind = Mine
				g.mineCount++
			}
		}
	}
	CalculateNumbers(g)
	return g
}

func revealedSet(g *Grid) map[Point]bool {
	set := make(map[Point]bool)
	for _, c := range g.Cells() {
		if c.Revealed {
			set[c.Position] = true
		}
	}
	return set
}
