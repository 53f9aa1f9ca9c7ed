package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "orrery.log"
)

// setupLogging routes the standard logger to a file when debug is set and
// discards it otherwise, so log calls in the frame loop are free in normal
// runs. Returns the open file (nil when disabled or on setup failure).
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}

// logf logs through the standard logger; a no-op unless -debug is set
func logf(format string, args ...any) {
	log.Printf(format, args...)
}
