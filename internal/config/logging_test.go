package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerParsesLevel(t *testing.T) {
	logger := NewLogger(LoggingConfig{Level: "debug", Format: "json"})
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger = NewLogger(LoggingConfig{Level: "WARN", Format: "json"})
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "nonsense"} {
		logger := NewLogger(LoggingConfig{Level: level, Format: "json"})
		require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	}
}
