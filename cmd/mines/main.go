package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-engine/internal/app"
	"github.com/vancomm/mines-engine/internal/config"
	"github.com/vancomm/mines-engine/internal/logging"
	"github.com/vancomm/mines-engine/internal/mines"
)

var version = "dev"

var CLI struct {
	Config  string           `short:"c" long:"config" type:"existingfile" help:"Path to JSON configuration file"`
	Board   string           `short:"b" long:"board" placeholder:"W:H:M" help:"Board as width:height:mines (overrides config)"`
	Width   int              `long:"width" help:"Board width (overrides config)"`
	Height  int              `long:"height" help:"Board height (overrides config)"`
	Mines   int              `short:"m" long:"mines" help:"Number of mines (overrides config)"`
	Seed    *uint64          `short:"s" long:"seed" help:"Seed for mine placement (overrides config)"`
	Delay   *time.Duration   `long:"delay" help:"Delay before the end of game screen (overrides config)"`
	LogFile string           `long:"log-file" help:"Log file path (overrides config)"`
	Debug   bool             `short:"d" long:"debug" help:"Enable debug logging"`
	Version kong.VersionFlag `short:"v" help:"Print version and exit"`
}

// loadConfig layers defaults, the config file, MINES_* environment
// variables and command line flags, in that order.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if CLI.Config != "" {
		if err := config.ReadConfig(CLI.Config, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to read config %s: %w", CLI.Config, err)
		}
	}

	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if CLI.Board != "" {
		params, err := mines.ParseSeed(CLI.Board)
		if err != nil {
			return cfg, err
		}
		cfg.Board = *params
	}
	if CLI.Width != 0 {
		cfg.Board.Width = CLI.Width
	}
	if CLI.Height != 0 {
		cfg.Board.Height = CLI.Height
	}
	if CLI.Mines != 0 {
		cfg.Board.MineCount = CLI.Mines
	}
	if CLI.Seed != nil {
		cfg.Seed = CLI.Seed
	}
	if CLI.Delay != nil {
		cfg.TransitionDelay = config.Duration{Duration: *CLI.Delay}
	}
	if CLI.LogFile != "" {
		cfg.Log.File = CLI.LogFile
	}

	return cfg, cfg.Validate()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mines"),
		kong.Description("Play minesweeper in the terminal."),
		kong.Vars{"version": version},
	)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	log, err := logging.New(os.Stderr, cfg, CLI.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		ctx.Exit(1)
	}
	logging.Attach(log, mines.Log)

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log.WithFields(logrus.Fields{
		"mode":  cfg.Mode,
		"board": cfg.Board.Seed(),
	}).Info("starting up")

	if err := app.New(log, cfg, os.Stdin, os.Stdout).Start(mainCtx); err != nil {
		log.Errorf("exit reason: %s", err)
		stop()
		ctx.Exit(1)
	}
}
