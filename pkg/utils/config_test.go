package utils

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithoutEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", config.App.Port)
	assert.Equal(t, "webuild_session", config.Auth.CookieName)
	assert.Equal(t, 24*time.Hour, config.Auth.SessionTTL)
	assert.Equal(t, 24*time.Hour, config.Auth.VerificationTTL)
	assert.False(t, config.SMTP.Enabled())
	assert.False(t, config.Redis.Enabled())
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("PORT=8080\nSESSION_COOKIE=dash_session\n"), 0o600))

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "dash_session", config.Auth.CookieName)
}
