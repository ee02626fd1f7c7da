// Package logging configures the process-wide logrus logger.
package logging

import (
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Setup picks the formatter and level; production logs are JSON
func Setup(level string, isProd bool) {
	if isProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
