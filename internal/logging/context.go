package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithOrigin creates a child logger with an origin field
func WithOrigin(ctx context.Context, origin string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("origin", origin).Logger()
	return WithContext(ctx, childLogger)
}

// WithFeature creates a child logger with a feature field
func WithFeature(ctx context.Context, feature string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("feature", feature).Logger()
	return WithContext(ctx, childLogger)
}
