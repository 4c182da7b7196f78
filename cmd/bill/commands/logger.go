package commands

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// zerologAdapter implements bill.Logger on top of zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

// newCLILogger builds the structured logger handed to the API client.
func newCLILogger(verbose bool) bill.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zerologAdapter{logger: logger}
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
