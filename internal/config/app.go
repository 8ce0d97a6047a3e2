package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides holds the MINES_* variables. Unset variables leave their
// pointer nil so only what the environment names is applied.
type envOverrides struct {
	Width           *int           `env:"MINES_WIDTH"`
	Height          *int           `env:"MINES_HEIGHT"`
	MineCount       *int           `env:"MINES_MINE_COUNT"`
	Seed            *uint64        `env:"MINES_SEED"`
	TransitionDelay *time.Duration `env:"MINES_TRANSITION_DELAY"`
	LogFile         *string        `env:"MINES_LOG_FILE"`
}

// ApplyEnv overrides config with any MINES_* variables that are set.
func ApplyEnv(config *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("unable to parse environment: %w", err)
	}

	if o.Width != nil {
		config.Board.Width = *o.Width
	}
	if o.Height != nil {
		config.Board.Height = *o.Height
	}
	if o.MineCount != nil {
		config.Board.MineCount = *o.MineCount
	}
	if o.Seed != nil {
		config.Seed = o.Seed
	}
	if o.TransitionDelay != nil {
		config.TransitionDelay = Duration{*o.TransitionDelay}
	}
	if o.LogFile != nil {
		config.Log.File = *o.LogFile
	}

	if Development() {
		config.Mode = "development"
	}

	return nil
}
