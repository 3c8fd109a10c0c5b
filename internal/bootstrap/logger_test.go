package bootstrap

import (
	"testing"

	"go-hr-admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("json at debug", func(t *testing.T) {
		logger, err := NewLogger(config.LogConfig{Level: "debug", Format: "json"})

		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console at warn hides info", func(t *testing.T) {
		logger, err := NewLogger(config.LogConfig{Level: "WARN", Format: "console"})

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger(config.LogConfig{Level: "loud", Format: "json"})

		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewLogger(config.LogConfig{Level: "info", Format: "xml"})

		assert.ErrorContains(t, err, "xml")
	})
}
