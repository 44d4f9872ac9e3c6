package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

type zerologLogger struct {
	log zerolog.Logger
}

// New returns a Logger tagged with the given component. APP_ENV=dev switches to a human readable console output.
func New(component string) Logger {
	return NewWithLevel(component, "info", os.Stdout)
}

func NewWithLevel(component, level string, output io.Writer) Logger {
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsedLevel = zerolog.InfoLevel
	}

	z := zerolog.New(output).Level(parsedLevel).With().Timestamp().Str("component", component).Logger()
	return &zerologLogger{log: z}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Debugw(msg string, fields map[string]any) {
	event := l.log.Debug()
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	event.Msg(msg)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
