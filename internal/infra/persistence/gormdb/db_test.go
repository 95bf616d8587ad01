package gormdb

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"cookbook/config"
	"cookbook/internal/infra/metrics"
)

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "mysql", DSN: "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")

	_, err = Open(nil, nil)
	assert.Error(t, err)
}

func TestOpen_SQLiteRejectsReplicas(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      "file:" + filepath.Join(t.TempDir(), "r.db"),
		Replicas: []string{"file:replica.db"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replicas")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	for _, table := range []string{"users", "recipes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := newTestDB(t)

	assert.Error(t, Migrate(context.Background(), db, "oracle"))
}

func TestNew_LifecycleMigratesAndCloses(t *testing.T) {
	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			DSN:         "file:" + filepath.Join(t.TempDir(), "fx.db") + "?_foreign_keys=on",
			AutoMigrate: true,
		},
	}

	m := metrics.New()
	lc := fxtest.NewLifecycle(t)
	db, err := New(Params{Lifecycle: lc, Config: cfg, Logger: slog.Default(), Metrics: m})
	require.NoError(t, err)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_sql_open_connections")

	lc.RequireStart()
	assert.True(t, db.Migrator().HasTable("users"))
	lc.RequireStop()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
