// Package logging sets up the file logger. The terminal belongs to the
// game screen, so nothing is ever logged to stdout or stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Setup returns a logger writing logfmt lines to path. An empty path gives a
// logger that discards everything. The returned closer is never nil.
func Setup(path string, debug bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		return New(io.Discard, level), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errors.Wrap(err, "create log directory")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	return New(f, level), f, nil
}

// New creates a logger on w
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "pixgolf",
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
