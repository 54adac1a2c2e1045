package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger selected by --log-file and --log-level.
// Without a log file, output goes to fallback; a nil fallback discards it.
// The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           level,
	})
	return logger, closeFn, nil
}
