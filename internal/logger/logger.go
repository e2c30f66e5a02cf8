package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is a thin chainable wrapper around slog that carries the package,
// file, and function scope as structured attributes. Err/Error log at error
// level and hand back an error the caller can return directly.
type Logger struct {
	slog     *slog.Logger
	pkg      string
	file     string
	function string
}

func New(pkg string) Logger {
	return Logger{
		slog: slog.Default(),
		pkg:  pkg,
	}
}

func (l Logger) File(file string) Logger {
	l.file = file
	return l
}

func (l Logger) Function(function string) Logger {
	l.function = function
	return l
}

func (l Logger) scoped(args ...any) []any {
	scoped := make([]any, 0, len(args)+6)
	scoped = append(scoped, "package", l.pkg)
	if l.file != "" {
		scoped = append(scoped, "file", l.file)
	}
	if l.function != "" {
		scoped = append(scoped, "function", l.function)
	}
	return append(scoped, args...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, l.scoped(args...)...)
}

func (l Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, l.scoped(args...)...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, l.scoped(args...)...)
}

// Er logs an error without returning one, for paths that recover locally.
func (l Logger) Er(msg string, err error, args ...any) {
	l.slog.Error(msg, l.scoped(append(args, "error", err)...)...)
}

// ErMsg logs an error-level message without an underlying error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.slog.Error(msg, l.scoped(args...)...)
}

// Err logs and returns the wrapped error so call sites can `return log.Err(...)`.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.slog.Error(msg, l.scoped(append(args, "error", err)...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from the message alone.
func (l Logger) Error(msg string, args ...any) error {
	l.slog.Error(msg, l.scoped(args...)...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is Error without structured arguments.
func (l Logger) ErrMsg(msg string) error {
	return l.Error(msg)
}

// Configure installs the process-wide slog handler. Text in development,
// JSON elsewhere.
func Configure(environment, level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
