package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 8080, cfg.HTTP.PortInt())
	assert.Equal(t, 15*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 20, cfg.Generator.MaxRenterID)
	assert.True(t, cfg.Kafka.Enabled)
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("STORAGE_SEED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_MAX_DELIVERIES", "2")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("GENERATOR_WAIT_SECONDS", "3")
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.Seed)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2, cfg.Kafka.MaxDeliveries)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 3*time.Second, cfg.Generator.Wait())
	assert.Equal(t, 8080, cfg.HTTP.PortInt())
}

func TestNew_MissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Chdir(t.TempDir())

	_, err := New()
	assert.NoError(t, err)
}
