package repository

import (
	"path/filepath"
	"testing"
	"time"

	"movieweb/internal/config"
	"movieweb/internal/database"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
