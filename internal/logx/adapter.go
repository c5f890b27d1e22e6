package logx

import "log/slog"

type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps a *slog.Logger in the Logger interface. Fields become
// slog attributes one for one.
func NewSlogAdapter(l *slog.Logger) Logger {
	return slogAdapter{l: l}
}

func (a slogAdapter) Debug(msg string, fields ...Field) { a.l.Debug(msg, attrs(fields)...) }
func (a slogAdapter) Info(msg string, fields ...Field)  { a.l.Info(msg, attrs(fields)...) }
func (a slogAdapter) Warn(msg string, fields ...Field)  { a.l.Warn(msg, attrs(fields)...) }
func (a slogAdapter) Error(msg string, fields ...Field) { a.l.Error(msg, attrs(fields)...) }

func (a slogAdapter) With(fields ...Field) Logger {
	return slogAdapter{l: a.l.With(attrs(fields)...)}
}

// Sync is a no-op: slog handlers write through.
func (a slogAdapter) Sync() error { return nil }

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
