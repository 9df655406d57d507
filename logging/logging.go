// Package logging configures the shared logrus logger. Call Init once
// from main; library packages obtain component-scoped entries through
// Component.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the shared logger. Level comes from ZORKCORE_LOG
// when set ("debug", "info", "warn", "error"), defaulting to info.
// Game output goes to stdout, so logs go to stderr.
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("ZORKCORE_LOG"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// SetOutput redirects log output. The TUI uses this to keep log lines
// from corrupting the alternate screen.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Component returns a logger entry tagged with a component name.
func Component(name string) *logrus.Entry {
	return log.WithField("component", name)
}
