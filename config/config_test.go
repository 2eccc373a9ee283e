package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lms-analytics-dashboard/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "lms_analytics", cfg.DBName)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "lms_test")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURL)
	assert.Equal(t, "lms_test", cfg.DBName)
	assert.Equal(t, ":9090", cfg.Address())
}

func TestAddressKeepsLeadingColon(t *testing.T) {
	t.Setenv("PORT", ":3000")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Address())
}
