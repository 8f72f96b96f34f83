package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "host=localhost dbname=peaktrack")
	t.Setenv("JWT_SECRET_KEY", "secret")

	conf := LoadAppConfig()
	assert.Equal(t, "8080", conf.ServerPort)
	assert.Equal(t, time.Hour, conf.AccessTokenDuration())
	assert.Equal(t, "peaktrack", conf.JWTIssuer)
	assert.Equal(t, DenylistPostgres, conf.DenylistBackend)
	assert.Equal(t, time.Hour, conf.TokenSweepInterval)
	assert.Equal(t, time.UTC, conf.Location)
	assert.Equal(t, PasswordConfig{6, 20, true, true, true, true}, conf.Password)
}

func TestLoadAppConfigOverrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "dsn")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ACCESS_TOKEN_TTL", "15")
	t.Setenv("DENYLIST_BACKEND", "redis")
	t.Setenv("TOKEN_SWEEP_INTERVAL", "10m")
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")
	t.Setenv("PASSWORD_MIN_LENGTH", "8")
	t.Setenv("PASSWORD_REQUIRE_SPECIAL", "false")

	conf := LoadAppConfig()
	assert.Equal(t, 15*time.Minute, conf.AccessTokenDuration())
	assert.Equal(t, DenylistRedis, conf.DenylistBackend)
	assert.Equal(t, 10*time.Minute, conf.TokenSweepInterval)
	require.NotNil(t, conf.Location)
	assert.Equal(t, "Europe/Berlin", conf.Location.String())
	assert.Equal(t, 8, conf.Password.MinLength)
	assert.False(t, conf.Password.RequireSpecial)
}

func TestLoadAppConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "dsn")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("TOKEN_SWEEP_INTERVAL", "soon")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	conf := LoadAppConfig()
	assert.Equal(t, time.Hour, conf.TokenSweepInterval)
	assert.Equal(t, time.UTC, conf.Location)
}

func TestLoadAppConfigPanicsWithoutSecret(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "dsn")
	t.Setenv("JWT_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))
	assert.PanicsWithValue(t, "critical config missing: JWT_SECRET_KEY", func() {
		LoadAppConfig()
	})
}
