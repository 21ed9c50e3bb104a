package connection_test

import (
	"path/filepath"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDialector(t *testing.T) {
	d, err := connection.Dialector(config.DBConfig{Driver: "postgres", Host: "localhost"})
	assert.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = connection.Dialector(config.DBConfig{Driver: "sqlite", DSN: "x.db"})
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = connection.Dialector(config.DBConfig{Driver: "mssql"})
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := connection.SQLiteDSN("/tmp/a.db")
	assert.Contains(t, dsn, "file:/tmp/a.db?")
	assert.Contains(t, dsn, "_foreign_keys=1")
	assert.Contains(t, dsn, "_journal_mode=WAL")
}

func TestConnectGORMWithRetry_Sqlite(t *testing.T) {
	cfg := config.DBConfig{
		Driver:     "sqlite",
		DSN:        filepath.Join(t.TempDir(), "attendance.db"),
		MaxRetries: 1,
	}

	db, err := connection.ConnectGORMWithRetry(cfg, zap.NewNop())
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())
}
