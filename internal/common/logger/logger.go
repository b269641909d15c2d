package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger every package logs through.
// Production emits the raw JSON stream for log collectors; debug switches
// to a console writer and lowers the level so per-request noise shows up.
func Init(serviceName string, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	base := zerolog.New(os.Stdout)
	if debug {
		level = zerolog.DebugLevel
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	log.Logger = base.
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
