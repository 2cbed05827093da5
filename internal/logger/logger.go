package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
)

func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return ERROR, nil
	case "warn", "warning":
		return WARN, nil
	case "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	}
	return INFO, fmt.Errorf("invalid log level: %s", lvl)
}

func (l Level) logrus() logrus.Level {
	switch l {
	case ERROR:
		return logrus.ErrorLevel
	case WARN:
		return logrus.WarnLevel
	case DEBUG:
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// Logger is a leveled logger writing text lines to stderr. It satisfies
// pinboard.Logger.
type Logger struct {
	entry *logrus.Logger
}

// New creates a new Logger.
func New(level Level) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level.logrus())
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return &Logger{entry: l}
}

// SetOutput redirects the log lines to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.SetOutput(w)
}

// Errorf prints a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Warnf prints a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

// Infof prints a formatted info message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

// Debugf prints a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}
