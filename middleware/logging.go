// Package middleware provides HTTP middleware and interceptors for servant
// apps.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/input-output-hk/servant"
)

// LoggingInterceptor returns an interceptor that logs endpoint calls using
// slog: one line at start, one at completion with duration and error
// status. The decoded argument count is logged rather than the argument
// values, which may carry user data.
func LoggingInterceptor(logger *slog.Logger) servant.UnaryInterceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, info *servant.RouteInfo, args []any, next servant.HandlerFunc) (any, error) {
		start := time.Now()

		logger.InfoContext(ctx, "request started",
			slog.String("method", info.Method),
			slog.String("path", info.Path),
			slog.Int("args", len(args)),
		)

		res, err := next(ctx, args)
		duration := time.Since(start)

		if err != nil {
			logger.ErrorContext(ctx, "request failed",
				slog.String("method", info.Method),
				slog.String("path", info.Path),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.InfoContext(ctx, "request completed",
				slog.String("method", info.Method),
				slog.String("path", info.Path),
				slog.Duration("duration", duration),
			)
		}

		return res, err
	}
}
