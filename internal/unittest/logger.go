// Package unittest provides fixtures and helpers shared by the package tests:
// loggers, random credentials, temporary directories and timeout assertions.
// It is intended for testing purposes only.
package unittest

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// Logger returns a zerolog.Logger configured for testing.
func Logger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(os.Stdout).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
