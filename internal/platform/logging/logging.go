package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/platform/config"
)

// New builds the process logger. The TUI owns the terminal, so output goes to
// cfg.LogFile when set and is discarded otherwise. The returned closer must be
// called on shutdown.
func New(cfg config.Config) (hclog.Logger, io.Closer, error) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "hazepito",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		Output:     out,
		JSONFormat: cfg.LogJSON,
	})
	return logger, closer, nil
}

// Stderr is the logger used by one-shot CLI commands.
func Stderr(cfg config.Config) hclog.Logger {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level < hclog.Warn {
		level = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "hazepito",
		Level:      level,
		Output:     os.Stderr,
		JSONFormat: cfg.LogJSON,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
