// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/sanaa/internal/platform/ctxkey"
	"github.com/taibuivan/sanaa/internal/platform/locale"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context, or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Display Language

// WithLanguage returns a new context carrying the negotiated display language.
func WithLanguage(ctx context.Context, lang locale.Lang) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLanguage, lang)
}

// GetLanguage retrieves the display language, falling back to [locale.Default].
func GetLanguage(ctx context.Context) locale.Lang {
	lang, ok := ctx.Value(ctxkey.KeyLanguage).(locale.Lang)
	if !ok {
		return locale.Default
	}
	return lang
}
