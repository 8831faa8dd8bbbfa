// Package applog is a small file-backed logger. The TUI owns stdout, so
// fetch failures and other diagnostics go to a log file instead.
package applog

import (
	"fmt"
	"log"
	"os"
)

type Logger struct {
	file   *os.File
	logger *log.Logger
}

// New opens (or creates) the log file in append mode.
func New(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops everything. Used when no log path
// was given.
func Discard() *Logger {
	return &Logger{logger: log.New(nopWriter{}, "", 0)}
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.SetPrefix("INFO: ")
	l.logger.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logger.SetPrefix("WARN: ")
	l.logger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.SetPrefix("ERROR: ")
	l.logger.Printf(format, args...)
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
