package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "SERVER_ADDRESS", "LOG_LEVEL", "SUPABASE_URL", "SUPABASE_ANON_KEY",
		"SUPABASE_JWT_SECRET", "DATABASE_URL", "MIGRATIONS_PATH", "REDIS_ADDRESS", "MQTT_BROKER_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SupabaseURL)
	assert.Empty(t, cfg.SupabaseAnonKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("MQTT_BROKER_URL", "tcp://broker:1883")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://project.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon", cfg.SupabaseAnonKey)
	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTTBrokerURL)
}
