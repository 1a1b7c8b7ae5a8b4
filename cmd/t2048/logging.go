package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// newLogger builds the command logger. While the TUI owns the terminal
// logs go to --log-file or nowhere; headless commands log to stderr.
// The returned close func releases the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig resolves the config file and applies command-line overrides.
func loadGameConfig(logger *log.Logger) (config.Game, error) {
	cfg, err := config.NewLoader(logger).Load(flagConfig)
	if err != nil {
		return config.Game{}, err
	}
	if err := cfg.ApplyPreset(config.Preset(flagDifficulty)); err != nil {
		return config.Game{}, err
	}
	cfg.ApplyOverrides(flagSize, flagWin)
	if err := cfg.Validate(); err != nil {
		return config.Game{}, err
	}
	return cfg, nil
}
