// Package logger configures the process-wide logrus logger used by the
// command line tools.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Setup applies level ("debug", "info", ...) and format ("text" or "json")
// and directs output to stderr.
func Setup(level, format string) error {
	return SetupWriter(os.Stderr, level, format)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(w io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	log.SetOutput(w)
	log.SetLevel(lvl)
	return nil
}

// Get returns the shared logger
func Get() *logrus.Logger {
	return log
}

// WithFields returns an entry carrying fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}
