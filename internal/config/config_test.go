package config_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/taext/decimaltime/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"EnvPrefix", config.EnvPrefix},
		{"LogFileName", config.LogFileName},
		{"DefaultPort", config.DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	port, err := strconv.Atoi(config.DefaultPort)
	assert.NoError(t, err, "Default port must be numeric")
	assert.GreaterOrEqual(t, port, config.MinPort)
	assert.LessOrEqual(t, port, config.MaxPort)

	assert.Equal(t, 0, config.DefaultOffsetHours, "Default offset must be UTC-neutral")
	assert.Equal(t, 3600, config.SecondsPerHour)
}

// TestTimeouts ensures that operational constraints are reasonable.
func TestTimeouts(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second, "ServerReadTimeout must be positive")
	assert.Greater(t, config.ServerWriteTimeout, 0*time.Second, "ServerWriteTimeout must be positive")
	assert.GreaterOrEqual(t, config.ServerIdleTimeout, config.ServerReadTimeout,
		"Idle timeout should not undercut the read timeout")
}

// TestLogRotation keeps the rotation policy bounded.
func TestLogRotation(t *testing.T) {
	assert.Greater(t, config.LogMaxSizeMB, 0)
	assert.Greater(t, config.LogMaxBackups, 0)
	assert.Greater(t, config.LogMaxAgeDays, 0)
}
