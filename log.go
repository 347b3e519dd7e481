package fluentvalidation

import (
	"context"
	"log/slog"
)

// FailureLogger returns a failure callback for OptionsBuilder.OnFailure that
// logs each failure at the level matching its severity. Rules are built once
// and shared across calls, so the callback has no request context; log the
// Result with the request's logger when request attributes are needed.
func FailureLogger(logger *slog.Logger) func(Failure) {
	return func(f Failure) {
		logger.Log(context.Background(), f.Severity.Level(), "validation failure", slog.Any("failure", f))
	}
}
