package store

import (
	"context"
	"log/slog"
	"strings"
)

// Logging logs every dispatched action, bumping the level for failure events.
func Logging[S any](l *slog.Logger) Middleware[S] {
	return func(_ *Store[S], next func(Action)) func(Action) {
		return func(a Action) {
			t := a.Type()

			level := slog.LevelInfo
			if strings.HasSuffix(t, "_FAIL") {
				level = slog.LevelWarn
			}

			l.Log(context.Background(), level, "dispatch", slog.String("action", t))
			next(a)
		}
	}
}
