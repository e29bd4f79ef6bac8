package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendaplus/salon-scheduler/internal/config"
)

// New monta o logger global a partir da config.
// JSON em produção, console colorido em desenvolvimento.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	output := io.Writer(os.Stdout)
	if !cfg.IsProduction() {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "salon-scheduler").
		Str("env", cfg.Env).
		Logger()
}
