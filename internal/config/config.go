package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-engine/internal/mines"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode            string           `json:"mode"`
	Board           mines.GameParams `json:"board"`
	Seed            *uint64          `json:"seed,omitempty"`
	TransitionDelay Duration         `json:"transition_delay"`
	Log             LogConfig        `json:"log"`
}

func Default() Config {
	return Config{
		Mode:            "production",
		Board:           mines.DefaultParams(),
		TransitionDelay: Duration{mines.DefaultTransitionDelay},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":             c.Mode,
		"width":            c.Board.Width,
		"height":           c.Board.Height,
		"mine_count":       c.Board.MineCount,
		"transition_delay": c.TransitionDelay.String(),
		"log_file":         c.Log.File,
	}
	if c.Seed != nil {
		fields["seed"] = *c.Seed
	}
	return fields
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Validate checks everything a session needs before it is allowed to start.
func (c Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.TransitionDelay.Duration < 0 {
		return errors.New("transition_delay must not be negative")
	}
	return nil
}

// ReadConfig decodes the JSON file at path over config, so fields missing
// from the file keep their current values.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, config)
}
