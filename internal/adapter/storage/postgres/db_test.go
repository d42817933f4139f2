package postgres

import (
	"testing"
	"time"

	"coin-ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "testuser",
		Password:        "testpass",
		DBName:          "coin_ledger_test",
		SSLMode:         "disable",
		MaxConns:        20,
		MinConns:        5,
		ConnMaxLifetime: 30 * time.Minute,
		LockTimeout:     3 * time.Second,
	}
}

func TestPoolConfig(t *testing.T) {
	poolCfg, err := poolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(20), poolCfg.MaxConns)
	assert.Equal(t, int32(5), poolCfg.MinConns)
	assert.Equal(t, 30*time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "localhost", poolCfg.ConnConfig.Host)
	assert.Equal(t, "coin_ledger_test", poolCfg.ConnConfig.Database)
	assert.Equal(t, "coin-ledger", poolCfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "3000", poolCfg.ConnConfig.RuntimeParams["lock_timeout"])
}

func TestPoolConfig_NoLockTimeout(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.LockTimeout = 0

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)

	_, ok := poolCfg.ConnConfig.RuntimeParams["lock_timeout"]
	assert.False(t, ok)
}

// NewPool itself needs a running PostgreSQL and is covered outside unit tests.
