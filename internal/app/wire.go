package app

import (
	"io"
	"os"
	"path/filepath"

	"recordio/internal/logging"
	"recordio/internal/recordfile"
)

// Wire bundles the logger and file codec for the CLI.
type Wire struct {
	Log   logging.Logger
	Files *recordfile.FileIO

	logFile io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level := logging.ParseLevel(cfg.LogLevel)

	var sink io.Writer = os.Stderr
	var logFile io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(
			filepath.Join(cfg.Home, cfg.LogFile),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return nil, err
		}
		sink = io.MultiWriter(os.Stderr, f)
		logFile = f
	}

	log := logging.New(sink, level)
	return &Wire{
		Log:     log,
		Files:   recordfile.New(log),
		logFile: logFile,
	}, nil
}

// Close releases the log file, if one was opened.
func (w *Wire) Close() error {
	if w.logFile != nil {
		return w.logFile.Close()
	}
	return nil
}
