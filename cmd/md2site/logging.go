package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger on w. Info by default, Debug with
// verbose, Warn with quiet. quiet wins when both are set.
func newLogger(w io.Writer, f commonFlags) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	switch {
	case f.quiet:
		log.SetLevel(logrus.WarnLevel)
	case f.verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
