// internal/logutil/logutil.go
package logutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger configured for CLI use: plain text to the given
// writer, info level by default, warnings only under --quiet, and debug
// when PEPKIT_DEBUG is set.
func New(quiet bool, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	switch {
	case os.Getenv("PEPKIT_DEBUG") != "":
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
