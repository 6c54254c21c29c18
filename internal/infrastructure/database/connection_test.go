package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/infrastructure/config"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/database"
)

func TestNewConnection_SQLiteFileUsesWAL(t *testing.T) {
	// Arrange
	cfg := &config.DatabaseConfig{
		Type:        "sqlite",
		Path:        filepath.Join(t.TempDir(), "saves.db"),
		BusyTimeout: time.Second,
	}

	// Act
	db, err := database.NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	// Assert
	var mode string
	require.NoError(t, db.Raw("PRAGMA journal_mode;").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
	require.NoError(t, database.AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("save_slots"))
	assert.True(t, db.Migrator().HasTable("save_history"))
}

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mysql"})
	assert.Error(t, err)
}

func TestNewTestConnection_Migrated(t *testing.T) {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable("save_slots"))
}
