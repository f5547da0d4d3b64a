package listkit

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is the diagnostic sink for list and layer operations. Failures
// inside Display never propagate to the caller; they end up here.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return logger
}

// SetVerbose enables or disables debug logging for listkit components.
func SetVerbose(v bool) {
	if v {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}
