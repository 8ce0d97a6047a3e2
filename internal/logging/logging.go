package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/mines-engine/internal/config"
)

// New builds the application logger. Console output goes to out; when a
// log file is configured every entry is also written there as JSON.
func New(out io.Writer, cfg config.Config, debug bool) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	logLevel := logrus.InfoLevel
	if debug || cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

// Attach points the package level loggers of the engine at log.
func Attach(log *logrus.Logger, targets ...*logrus.Logger) {
	for _, t := range targets {
		t.SetOutput(log.Out)
		t.SetLevel(log.GetLevel())
		t.SetFormatter(log.Formatter)
		t.ReplaceHooks(log.Hooks)
	}
}
