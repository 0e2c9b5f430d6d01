package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultLogConfig()},
		{name: "console format", cfg: LogConfig{Level: "debug", Format: "console"}},
		{name: "stderr output", cfg: LogConfig{Level: "warn", Format: "json", Output: "stderr"}},
		{name: "invalid level", cfg: LogConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)

			logger.Debug("debug message", String("key", "value"))
			logger.Info("info message", Int("count", 1))
			logger.Warn("warn message", Bool("flag", true))
		})
	}
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	logger := NopLogger()
	child := logger.With(String("component", "configurator"))

	require.NotNil(t, child)
	child.Info("does not panic")
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NopLogger()
	logger.Debug("dropped")
	logger.Error("dropped", Error(assert.AnError))
	assert.NoError(t, logger.Sync())
}

func TestGlobalLogger(t *testing.T) {
	logger := NopLogger()
	SetGlobalLogger(logger)
	assert.Equal(t, logger, GetGlobalLogger())

	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
}
