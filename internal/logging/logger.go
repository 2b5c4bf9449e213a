// Package logging provides a log/slog backed github.com/go-courier/logr logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-courier/logr"
)

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat validates a handler format name, defaulting to "text".
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return "text", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unknown log format %q", format)
	}
}

// New returns a logger writing records at or above level to w.
// format is "text" or "json".
func New(w io.Writer, level, format string) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	format, err = ParseFormat(format)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}

	return &logger{slog: slog.New(h), ctx: context.Background()}, nil
}

// WithLogger returns ctx carrying l.
func WithLogger(ctx context.Context, l logr.Logger) context.Context {
	return logr.LoggerInjectContext(ctx, l)
}

type logger struct {
	slog      *slog.Logger
	ctx       context.Context
	spans     []string
	attrs     []any
	startedAt time.Time
}

func (d logger) WithValues(keyAndValues ...any) logr.Logger {
	d.attrs = append(append([]any(nil), d.attrs...), keyAndValues...)
	return &d
}

func (d *logger) Start(ctx context.Context, name string, keyAndValues ...any) (context.Context, logr.Logger) {
	ll := &logger{
		slog: d.slog,
		ctx:  ctx,

		spans:     append(append([]string(nil), d.spans...), name),
		attrs:     append(append([]any(nil), d.attrs...), keyAndValues...),
		startedAt: time.Now(),
	}

	return logr.LoggerInjectContext(ctx, ll), ll
}

func (d *logger) End() {
	var dd logr.Logger = d
	if !d.startedAt.IsZero() {
		dd = dd.WithValues(slog.Duration("cost", time.Since(d.startedAt)))
	}
	dd.Debug("done")
}

func (d *logger) toAttrs() []any {
	if len(d.spans) == 0 {
		return d.attrs
	}
	return append(append([]any(nil), d.attrs...), slog.String("span", strings.Join(d.spans, " ")))
}

func (d *logger) log(level slog.Level, msg string) {
	if !d.slog.Enabled(d.ctx, level) {
		return
	}
	d.slog.Log(d.ctx, level, msg, d.toAttrs()...)
}

func (d *logger) Debug(format string, args ...any) {
	d.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}

func (d *logger) Info(format string, args ...any) {
	d.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}

func (d *logger) Warn(err error) {
	d.log(slog.LevelWarn, err.Error())
}

func (d *logger) Error(err error) {
	d.log(slog.LevelError, err.Error())
}
