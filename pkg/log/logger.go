package log

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMutex   sync.RWMutex
	defaultLogger Logger = &zerologLogger{zl: zerolog.Nop()}
)

// GetLogger returns the current default logger.
// Until Setup or SetLogger is called, logging is a no-op so that the library
// stays silent inside applications that do not care about its diagnostics.
func GetLogger() Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// SetLogger replaces the default logger.
func SetLogger(l Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLogger = l
}

// Setup installs a zerolog-backed default logger writing JSON records to w
// at the given minimum level.
func Setup(w io.Writer, level Level) {
	SetLogger(NewZerologLogger(w, level))
}

// NewZerologLogger creates a Logger backed by rs/zerolog.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	l.zl.Error().Fields(fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel()
}

// toZerologLevel maps slog-compatible levels onto zerolog levels.
func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
