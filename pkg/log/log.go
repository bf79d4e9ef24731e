// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the interface every component logs through. Components
// never construct their own logger; one is handed to them via
// options, so that tests and embedders can silence or capture output.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// WithFields returns a Logger that attaches the given fields to
	// every entry.
	WithFields(fields Fields) Logger
	// Fatal logs the message and terminates the process.
	Fatal(str string)
}

// Fields are structured key/value pairs attached to log entries.
type Fields = logrus.Fields

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to stderr at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	return &logger{entry: logrus.NewEntry(l)}
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}

func (l *logger) Fatal(str string) {
	l.entry.Fatal(str)
}
