package enginelog

import (
	"bytes"
	"log"
)

// stdLogger is implemented by Loggers that are a *log.Logger underneath.
type stdLogger interface {
	StdLogger() *log.Logger
}

// stdAdapter is the Logger returned by FromStdLogger.
type stdAdapter struct {
	l *log.Logger
}

func (s stdAdapter) Logf(format string, args ...any) { s.l.Printf(format, args...) }
func (s stdAdapter) StdLogger() *log.Logger          { return s.l }

// FromStdLogger exposes l as a Logger. NewStdLogger hands l back unchanged.
// A nil l discards everything.
func FromStdLogger(l *log.Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return stdAdapter{l: l}
}

// logWriter feeds each write to a Logger as one line.
type logWriter struct {
	Logger
}

func (w logWriter) Write(b []byte) (int, error) {
	w.Logf("%s", bytes.TrimSuffix(b, []byte{'\n'}))
	return len(b), nil
}

// NewStdLogger exposes l as a *log.Logger for engines that take one.
// A Logger built by FromStdLogger yields its underlying *log.Logger unchanged.
// Otherwise the standard logger emits each line in a single Write, so every line
// reaches l once, without prefix, flags or trailing newline.
func NewStdLogger(l Logger) *log.Logger {
	if l == nil {
		l = Nop{}
	}
	if s, ok := l.(stdLogger); ok {
		return s.StdLogger()
	}
	return log.New(logWriter{l}, "", 0)
}

var _ stdLogger = stdAdapter{}
