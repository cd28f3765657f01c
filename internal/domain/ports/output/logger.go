package ports

import "log/slog"

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// OptionalInt64 logs the pointed-to value, or "none" when v is nil.
func OptionalInt64(key string, v *int64) slog.Attr {
	if v == nil {
		return slog.String(key, "none")
	}
	return slog.Int64(key, *v)
}
