package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithFields attaches fields to the context logger.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx).With().Fields(fields).Logger()
	return WithLogger(ctx, &logger)
}

// WithField attaches one field to the context logger.
func WithField(ctx context.Context, key string, value any) context.Context {
	return WithFields(ctx, map[string]any{key: value})
}

// WithCase tags log lines with the case being verified.
func WithCase(ctx context.Context, caseName string) context.Context {
	return WithField(ctx, "case", caseName)
}

// WithDocument tags log lines with a document ID.
func WithDocument(ctx context.Context, documentID string) context.Context {
	return WithField(ctx, "document_id", documentID)
}

// WithSource tags log lines with where the case was loaded from.
func WithSource(ctx context.Context, source string) context.Context {
	return WithField(ctx, "source", source)
}

// WithOperation tags log lines with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithError attaches err under zerolog's error field name. A nil err leaves ctx untouched.
func WithError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}
	logger := FromContext(ctx).With().Err(err).Logger()
	return WithLogger(ctx, &logger)
}
