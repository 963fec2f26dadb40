package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1), "debug level should be enabled")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "trace", Format: "json"})
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNamed_NilParent(t *testing.T) {
	assert.NotNil(t, Named(nil, "combat"))
}

func TestPropertyValidLevelsAlwaysBuild(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.SampledFrom([]string{"debug", "info", "warn", "error"}).Draw(t, "level")
		format := rapid.SampledFrom([]string{"json", "console"}).Draw(t, "format")
		logger, err := NewLogger(config.LoggingConfig{Level: level, Format: format})
		if err != nil {
			t.Fatalf("NewLogger(%s,%s) failed: %v", level, format, err)
		}
		if logger == nil {
			t.Fatal("nil logger")
		}
	})
}
