package infrastructure

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggerOptions configure le logger structuré
type LoggerOptions struct {
	ServiceName string
	Level       string
	Format      string // "json" (défaut) ou "console"
	Output      io.Writer
}

// Logger enveloppe zerolog et transporte des champs dans le contexte
type Logger struct {
	base zerolog.Logger
}

type loggerCtxKey struct{}

// NewLogger crée un logger structuré
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	base := zerolog.New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(ParseLevel(opts.Level))

	return &Logger{base: base}
}

// NopLogger retourne un logger qui n'écrit rien (tests)
func NopLogger() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// ParseLevel convertit un niveau texte, info par défaut
func ParseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) from(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if entry, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
			return entry
		}
	}
	return &l.base
}

// WithField retourne un contexte dont les logs portent key=value
func (l *Logger) WithField(ctx context.Context, key string, value any) context.Context {
	entry := l.from(ctx).With().Interface(key, value).Logger()
	return context.WithValue(ctx, loggerCtxKey{}, &entry)
}

// Debug écrit un message de niveau debug avec des champs optionnels
func (l *Logger) Debug(ctx context.Context, msg string, fields map[string]any) {
	l.from(ctx).Debug().Fields(fields).Msg(msg)
}

// Info écrit un message de niveau info avec des champs optionnels
func (l *Logger) Info(ctx context.Context, msg string, fields map[string]any) {
	l.from(ctx).Info().Fields(fields).Msg(msg)
}

// Warn écrit un avertissement
func (l *Logger) Warn(ctx context.Context, msg string, fields map[string]any) {
	l.from(ctx).Warn().Fields(fields).Msg(msg)
}

// Error écrit une erreur
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.from(ctx).Error().Err(err).Msg(msg)
}
