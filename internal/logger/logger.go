package logger

import (
	"context"
	"github.com/lmittmann/tint"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

type handler int

const (
	JSONHandler handler = iota
	TextHandler
	DevHandler
)

const (
	DefaultLevel = slog.LevelInfo

	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

type LoggerOpt func(o *loggerOpts)

type loggerOpts struct {
	writer  io.Writer
	level   slog.Level
	handler handler
}

func WithLoggerLevel(lvl slog.Level) LoggerOpt {
	return func(o *loggerOpts) {
		o.level = lvl
	}
}

func WithLoggerWriter(w io.Writer) LoggerOpt {
	return func(o *loggerOpts) {
		o.writer = w
	}
}

func WithHandler(h handler) LoggerOpt {
	return func(o *loggerOpts) {
		o.handler = h
	}
}

// New returns a logger configured from LOG_HANDLER (json, text or dev) and LOG_LEVEL,
// overridden by any given options.
func New(opts ...LoggerOpt) *slog.Logger {
	o := &loggerOpts{
		level:   ParseLevel(os.Getenv("LOG_LEVEL")),
		writer:  os.Stderr,
		handler: handlerFromEnv(),
	}

	for _, apply := range opts {
		apply(o)
	}

	switch o.handler {
	case DevHandler:
		return slog.New(tint.NewHandler(o.writer, &tint.Options{
			Level:      o.level,
			TimeFormat: "[15:04:05.000]",
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.LevelKey && len(groups) == 0 {
					if lvl, ok := a.Value.Any().(slog.Level); ok {
						// keep default color for warn and error
						switch lvl {
						case LevelTrace:
							return tint.Attr(13, slog.String(a.Key, "TRC"))
						case LevelDebug:
							return tint.Attr(3, slog.String(a.Key, "DBG"))
						case LevelInfo:
							return tint.Attr(14, slog.String(a.Key, "INF"))
						}
					}
				}
				return a
			},
		}))

	case TextHandler:
		return slog.New(slog.NewTextHandler(o.writer, handlerOptions(o.level)))

	default:
		return slog.New(slog.NewJSONHandler(o.writer, handlerOptions(o.level)))
	}
}

// VoidLogger returns a logger that discards everything.
func VoidLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or a new logger if none stored.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return New()
}

// ParseLevel maps trace, debug, info, warn and error to levels. Anything else is DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return DefaultLevel
	}
}

func handlerFromEnv() handler {
	switch strings.ToLower(os.Getenv("LOG_HANDLER")) {
	case "json":
		return JSONHandler
	case "txt", "text":
		return TextHandler
	default:
		return DevHandler
	}
}

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					return slog.String(attr.Key, "TRACE")
				}
			}
			return attr
		},
	}
}
