package mines

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth     = 16
	DefaultHeight    = 16
	DefaultMineCount = 32
)

type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func DefaultParams() GameParams {
	return GameParams{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MineCount: DefaultMineCount,
	}
}

func (p GameParams) Area() int {
	return p.Width * p.Height
}

// Validate rejects params that would leave mine placement without a free
// cell to scan to.
func (p GameParams) Validate() error {
	if p.Width <= 0 {
		return &ParamsError{"width", fmt.Sprintf("must be positive, got %d", p.Width)}
	}
	if p.Height <= 0 {
		return &ParamsError{"height", fmt.Sprintf("must be positive, got %d", p.Height)}
	}
	if p.MineCount <= 0 {
		return &ParamsError{"mine_count", fmt.Sprintf("must be positive, got %d", p.MineCount)}
	}
	if p.MineCount >= p.Area() {
		return &ParamsError{"mine_count", fmt.Sprintf(
			"must be less than %d (%dx%d), got %d",
			p.Area(), p.Width, p.Height, p.MineCount,
		)}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) ValidatePosition(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
