package common

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Log(message string)
	LogError(message string)
	LogDebug(message string)
	// WithField returns a logger which attaches the given key/value to every message.
	WithField(key string, value any) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewFileLogger logs to the file specified by `path` and to the console. If the file is unavailable, writes to the
// console only.
func NewFileLogger(path string, level string) Logger {
	var output io.Writer = os.Stderr
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s. Logging switched to console.\n", err)
	} else {
		output = io.MultiWriter(os.Stderr, file)
	}
	return NewLogger(output, level)
}

// NewLogger logs to the given writer. Unknown levels fall back to "info".
func NewLogger(output io.Writer, level string) Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}
	logger.SetLevel(parsedLevel)
	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

// NewNopLogger discards everything. Useful in tests.
func NewNopLogger() Logger {
	return NewLogger(io.Discard, "panic")
}

func (l *logrusLogger) Log(message string) {
	l.entry.Info(message)
}

func (l *logrusLogger) LogError(message string) {
	l.entry.Error(message)
}

func (l *logrusLogger) LogDebug(message string) {
	l.entry.Debug(message)
}

func (l *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}
