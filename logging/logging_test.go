package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"json info", Config{Level: "info", Format: "json"}, false},
		{"console debug", Config{Level: "debug", Format: "console"}, false},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.NoError(t, Sync(logger))
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "yaml"})
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Info("discarded")
	assert.NoError(t, Sync(logger))
}
