package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/enginelog"
)

// Backend selects the logging library the demo callback writes to.
type Backend string

const (
	BackendZerolog Backend = "zerolog"
	BackendZap     Backend = "zap"
	BackendSlog    Backend = "slog"
)

// severity is recovered from the level tag the badger binding puts in front of each line.
type severity int8

const (
	sevDebug severity = iota
	sevInfo
	sevWarn
	sevError
)

func parseSeverity(s string) (severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return sevDebug, nil
	case "info", "":
		return sevInfo, nil
	case "warn", "warning":
		return sevWarn, nil
	case "error":
		return sevError, nil
	default:
		return sevInfo, fmt.Errorf("unknown level %q", s)
	}
}

var tags = [...]struct {
	prefix string
	sev    severity
}{
	{"DEBUG: ", sevDebug},
	{"INFO: ", sevInfo},
	{"WARNING: ", sevWarn},
	{"ERROR: ", sevError},
}

// splitSeverity strips the level tag. Untagged lines are info.
func splitSeverity(msg string) (severity, string) {
	for _, t := range tags {
		if rest, ok := strings.CutPrefix(msg, t.prefix); ok {
			return t.sev, rest
		}
	}
	return sevInfo, msg
}

// ts is the single authoritative timestamp of a line.
func ts() string { return xclock.Now().UTC().Format(time.RFC3339Nano) }

// newSink builds the callback handed to enginelog. Badger logs from background
// goroutines, so every sink serializes writes to w. flush must run before exit.
func newSink(b Backend, w io.Writer, minSev severity) (fn enginelog.LogFunc, flush func() error, err error) {
	switch b {
	case BackendZerolog, "":
		return zerologSink(w, minSev), func() error { return nil }, nil
	case BackendZap:
		l := zapLogger(w, minSev)
		sync := func() error {
			_ = l.Sync() // fsync on a terminal fails with EINVAL
			return nil
		}
		return zapSink(l), sync, nil
	case BackendSlog:
		return slogSink(w, minSev), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", b)
	}
}

func toZerolog(s severity) zerolog.Level {
	switch s {
	case sevDebug:
		return zerolog.DebugLevel
	case sevInfo:
		return zerolog.InfoLevel
	case sevWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func zerologSink(w io.Writer, minSev severity) enginelog.LogFunc {
	zl := zerolog.New(zerolog.SyncWriter(w)).Level(toZerolog(minSev)).With().Str("engine", "badger").Logger()
	return func(msg string) {
		sev, text := splitSeverity(msg)
		// WithLevel returns nil when the level is disabled.
		ev := zl.WithLevel(toZerolog(sev))
		if ev == nil {
			return
		}
		ev.Str("ts", ts()).Msg(text)
	}
}

func toZap(s severity) zapcore.Level {
	switch s {
	case sevDebug:
		return zapcore.DebugLevel
	case sevInfo:
		return zapcore.InfoLevel
	case sevWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func zapLogger(w io.Writer, minSev severity) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "" // "ts" comes from xclock
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(toZap(minSev)))
	return zap.New(core).With(zap.String("engine", "badger"))
}

func zapSink(l *zap.Logger) enginelog.LogFunc {
	return func(msg string) {
		sev, text := splitSeverity(msg)
		// Check avoids building fields when disabled.
		if ce := l.Check(toZap(sev), text); ce != nil {
			ce.Write(zap.String("ts", ts()))
		}
	}
}

func toSlog(s severity) slog.Level {
	switch s {
	case sevDebug:
		return slog.LevelDebug
	case sevInfo:
		return slog.LevelInfo
	case sevWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func slogSink(w io.Writer, minSev severity) enginelog.LogFunc {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: toSlog(minSev),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	l := slog.New(h).With(slog.String("engine", "badger"))
	return func(msg string) {
		sev, text := splitSeverity(msg)
		l.LogAttrs(context.Background(), toSlog(sev), text, slog.String("ts", ts()))
	}
}
