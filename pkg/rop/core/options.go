package core

import (
	"context"
	"io"
	"log/slog"
)

type OptionKey string

const (
	CaptureOptionKey OptionKey = "capture_options"
	LoggerOptionKey  OptionKey = "logger_options"
)

type CaptureOptions struct {
	CapturePanics bool
}

type LoggerOptions struct {
	Logger   *slog.Logger
	Root     *slog.Logger
	Scenario string
}

var nop = slog.New(slog.NewTextHandler(io.Discard, nil))

func WithCapturePanics(ctx context.Context, capturePanics bool) context.Context {
	return context.WithValue(ctx, CaptureOptionKey, CaptureOptions{CapturePanics: capturePanics})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger, Root: logger})
}

// WithScenario tags the logger in ctx with scenario id. The tag replaces an
// outer scenario's one, which moves to "parent".
func WithScenario(ctx context.Context, id string) context.Context {
	options, _ := ctx.Value(LoggerOptionKey).(LoggerOptions)
	root := options.Root
	if root == nil {
		root = nop
	}

	logger := root.With(slog.String("scenario", id))
	if options.Scenario != "" {
		logger = logger.With(slog.String("parent", options.Scenario))
	}
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger, Root: root, Scenario: id})
}

func IsCapturePanicsEnabled(ctx context.Context, defaultCapturePanics bool) bool {
	if ctx == nil {
		return defaultCapturePanics
	}
	options, ok := ctx.Value(CaptureOptionKey).(CaptureOptions)
	if ok {
		return options.CapturePanics
	}
	return defaultCapturePanics
}

// GetLogger returns the logger attached to ctx, or one that discards everything.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nop
	}
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return nop
}
