// Package logging configures zerolog for a process whose terminal is owned by the UI
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FileName is the log file created inside the log directory
const FileName = "driftline.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the process logger
// Debug off: logs are discarded, since stdout belongs to the terminal UI
// Debug on: JSON lines are appended to dir/driftline.log at the given level
// The returned closer releases the file and is safe to call when nothing was opened
func Setup(debug bool, dir, level string) (zerolog.Logger, io.Closer, error) {
	if !debug {
		logger := zerolog.Nop()
		log.Logger = logger
		return logger, nopCloser{}, nil
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, ParseLevel(level))
	log.Logger = logger
	return logger, f, nil
}

// New returns a timestamped logger writing to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a level; unknown or empty input means info
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
