package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// NewLogger returns a logger writing to stdout in the given format. Unknown
// formats fall back to text.
func NewLogger(format LogFormat) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	switch format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case LogFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.Warnf("unknown log format %q, using %s", format, LogFormatText)
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
