// Package logger provides the component loggers used across the service.
// Every line is tagged with the component name and the level, e.g.
//
//	2025/02/08 11:01:02 [ROBOT] [INFO] executed 2 commands
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	errorColor = "\033[31m"
	warnColor  = "\033[33m"
	infoColor  = "\033[32m"
	resetColor = "\033[0m"
)

// ErrEmptyPrefix is returned when a logger is created without a component name.
var ErrEmptyPrefix = errors.New("logger prefix is empty")

// Logger is the logging interface consumed by services and adapters.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// ColoredLogger writes level-tagged lines with a colored component prefix.
type ColoredLogger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger for the named component writing to w.
// color is an ANSI escape sequence applied to the component name.
func New(prefix, color string, w io.Writer) (*ColoredLogger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	return &ColoredLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *ColoredLogger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *ColoredLogger) Warning(msg string) {
	l.print(warnColor, "WARNING", msg)
}

// Error logs a failure.
func (l *ColoredLogger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

func (l *ColoredLogger) print(levelColor, level, msg string) {
	l.out.Println(fmt.Sprintf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, resetColor, levelColor, level, resetColor, msg))
}

// Discard returns a logger that drops every message.
func Discard() Logger {
	return &ColoredLogger{prefix: "DISCARD", out: log.New(io.Discard, "", 0)}
}
