// Package logger configura zerolog para la aplicación: consola legible en
// development, JSON una línea por evento en el resto de entornos, siempre
// con el nombre del servicio como campo fijo.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger. Out permite capturar la salida en tests;
// vacío escribe a stdout.
type Config struct {
	Env     string // development -> ConsoleWriter; otro valor -> JSON
	Level   string // trace, debug, info, warn, error; inválido o vacío -> info
	Service string // se adjunta como campo "service" en cada evento
	Out     io.Writer
}

// Logger envuelve zerolog para inyectarlo por las capas de la aplicación.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger y lo instala también como logger global de zerolog.
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	builder := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.Service != "" {
		builder = builder.Str("service", cfg.Service)
	}
	zl := builder.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
