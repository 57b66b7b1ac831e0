package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "JWT_ACCESS_EXPIRY", "OVERDUE_SWEEP_INTERVAL", "LOG_RETENTION_DAYS", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Zero(t, cfg.OverdueSweepInterval)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/rent.db")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("OVERDUE_SWEEP_INTERVAL", "10m")
	t.Setenv("LOG_RETENTION_DAYS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "/tmp/rent.db", cfg.DSN())
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 10*time.Minute, cfg.OverdueSweepInterval)
	assert.Equal(t, 30, cfg.LogRetentionDays)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBPassword: "pw"}
	assert.Contains(t, cfg.Validate(), "JWT_SECRET")

	cfg.JWTSecret = "secret"
	assert.Empty(t, cfg.Validate())

	cfg.DBPassword = ""
	assert.Contains(t, cfg.Validate(), "DB_PASSWORD")

	cfg.DBDriver = "sqlite"
	assert.Empty(t, cfg.Validate())

	cfg.DBDriver = "mysql"
	assert.Contains(t, cfg.Validate(), "DB_DRIVER")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "rent", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=rent port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
