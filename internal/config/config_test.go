package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LogLevelIsAValidZerologLevel(t *testing.T) {
	cfg := Load()

	// The log level is its own key; the gin mode ("debug"/"release") is
	// not a zerolog level name and must never be fed to the logger.
	require.NotEmpty(t, cfg.Server.LogLevel)
	_, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	require.NoError(t, err)
}

func TestLoad_EngineDefaultsMatchCanonicalSet(t *testing.T) {
	cfg := Load()
	assert.Equal(t, DefaultEngineConfig(), cfg.Engine)
}
