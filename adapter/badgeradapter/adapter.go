package badgeradapter

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/trickstertwo/enginelog"
)

// Logger bridges an enginelog.Logger to badger.Logger (Adapter Strategy).
// Every severity is forwarded; filtering belongs to the callback behind the
// enginelog.Logger. Do not combine with badger.Options.WithLoggingLevel, which
// installs badger's default logger in place of this one.
type Logger struct {
	l enginelog.Logger
}

// New wraps l. A nil l discards everything.
func New(l enginelog.Logger) *Logger {
	if l == nil {
		l = enginelog.Nop{}
	}
	return &Logger{l: l}
}

func (a *Logger) Errorf(format string, v ...interface{})   { a.logf(LevelError, format, v) }
func (a *Logger) Warningf(format string, v ...interface{}) { a.logf(LevelWarning, format, v) }
func (a *Logger) Infof(format string, v ...interface{})    { a.logf(LevelInfo, format, v) }
func (a *Logger) Debugf(format string, v ...interface{})   { a.logf(LevelDebug, format, v) }

func (a *Logger) logf(level Level, format string, v []interface{}) {
	a.l.Logf(level.tag()+format, v...)
}

var _ badger.Logger = (*Logger)(nil)
