package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// That function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Unexported key type so values stored here never collide with other packages.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON slog handler as the
// process default and returns the resulting logger. The standard library
// log package is redirected into the same handler.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	return logger
}

// WithLogger stores base in the context. Get prefers it over slog.Default,
// which lets tests and embedders route logs without touching global state.
func WithLogger(ctx context.Context, base *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), base)
}

// WithMuted marks the context so that every logger obtained from it discards
// its output.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// With returns a new context carrying extra key-value pairs that Get adds to
// every logger it returns.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...) //nolint:gocritic

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(contextKey("loggerValues")).([]any)
	if !ok {
		return nil
	}

	// Copy so appends in With never share a backing array between contexts.
	out := make([]any, len(vals))
	copy(out, vals)

	return out
}

// nullHandler discards every record. It backs muted loggers.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler { return n }

func (n *nullHandler) WithGroup(_ string) slog.Handler { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the logger for the first non-nil context: the one stored with
// WithLogger (or slog.Default), decorated with values added through With.
// A muted context yields a logger that writes nothing.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c //nolint:fatcontext

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(contextKey("logger")).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
