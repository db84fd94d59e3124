// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. In dev the output is the human-friendly
// console writer; everywhere else it is plain JSON on stderr.
func New(env string) zerolog.Logger {
	var l zerolog.Logger
	if strings.EqualFold(env, "dev") {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stderr)
	}
	return l.With().Timestamp().Str("service", "contact-management").Logger()
}
