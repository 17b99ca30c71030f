package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, dotenv, err := Load()
	require.NoError(t, err)
	assert.False(t, dotenv)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"DWM", "FEDEX", "DHLE", "POL", "UPS"}, cfg.Priority)
	assert.Equal(t, "Broker", cfg.GroupColumn)
	assert.Equal(t, 10, cfg.ProgressEvery)
	assert.Equal(t, 3, cfg.Google.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Google.BaseDelay)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHEETDIFF_PRIORITY", "UPS,DWM")
	t.Setenv("SHEETDIFF_GROUP_COLUMN", "Carrier")
	t.Setenv("SHEETDIFF_PROGRESS_EVERY", "0")
	t.Setenv("SHEETDIFF_GOOGLE_TIMEOUT", "5s")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"UPS", "DWM"}, cfg.Priority)
	assert.Equal(t, "Carrier", cfg.GroupColumn)
	assert.Equal(t, 0, cfg.ProgressEvery)
	assert.Equal(t, 5*time.Second, cfg.Google.Timeout)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("SHEETDIFF_PROGRESS_EVERY", "-1")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("SHEETDIFF_PROGRESS_EVERY", "ten")
	_, _, err = Load()
	assert.Error(t, err)
}
