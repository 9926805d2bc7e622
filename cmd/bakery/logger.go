package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to path. The terminal belongs to the
// game, so without a path logs are discarded.
func newLogger(path, level string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bakery",
		Level:           lvl,
	})
	return logger, closer, nil
}
