package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(Config{
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew_EnforcesForeignKeys(t *testing.T) {
	db := openTestDB(t)

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)

	_, err := db.Exec(`CREATE TABLE parents (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE children (id TEXT PRIMARY KEY, parent_id TEXT NOT NULL REFERENCES parents(id))`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO children (id, parent_id) VALUES ('c1', 'missing')`)
	assert.Error(t, err)
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE items (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)

	err = db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (id) VALUES ('a')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE items (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)

	failure := errors.New("step failed")
	err = db.WithTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (id) VALUES ('a')`); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestRunMigrations_AppliesOnceAndIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	dir := t.TempDir()
	migration := []byte(`CREATE TABLE widgets (id TEXT PRIMARY KEY);`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_widgets.sql"), migration, 0o644))

	migrator := NewMigrator(db, zap.NewNop())
	require.NoError(t, migrator.RunMigrations(dir))

	// Second run must skip the already-applied version.
	require.NoError(t, migrator.RunMigrations(dir))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	_, err := db.Exec(`INSERT INTO widgets (id) VALUES ('w1')`)
	assert.NoError(t, err)
}
