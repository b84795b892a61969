package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8081"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "http://localhost:8080/api", cfg.Console.APIBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000/api/")
	t.Setenv("BASE_PATH", "/inventory/")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000/api", cfg.Console.APIBaseURL)
	assert.Equal(t, "/inventory", cfg.Console.BasePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestFromViper_FlagValuesWin(t *testing.T) {
	v := viper.New()
	v.Set("log_level", "debug")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromViper_RejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := FromViper(viper.New())
	assert.Error(t, err)
}
