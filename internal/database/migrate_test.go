package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/Varun5711/todolist/internal/database/migrations"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLock struct {
	acquired   bool
	acquireErr error
	released   bool
}

func (l *fakeLock) Acquire(context.Context) (bool, error) {
	return l.acquired, l.acquireErr
}

func (l *fakeLock) Release(context.Context) error {
	l.released = true
	return nil
}

func stubGooseUp(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := gooseUp
	gooseUp = func(context.Context, *sql.DB, string) error {
		calls++
		return err
	}
	t.Cleanup(func() { gooseUp = orig })
	return &calls
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter("migrate", &bytes.Buffer{}, logger.DEBUG)
}

func TestRunMigrations_NoLock(t *testing.T) {
	calls := stubGooseUp(t, nil)

	err := RunMigrations(context.Background(), nil, nil, testLogger())

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
}

func TestRunMigrations_LockHeldElsewhere(t *testing.T) {
	calls := stubGooseUp(t, nil)
	lock := &fakeLock{acquired: false}

	err := RunMigrations(context.Background(), nil, lock, testLogger())

	assert.ErrorIs(t, err, ErrMigrationLocked)
	assert.Equal(t, 0, *calls)
	assert.False(t, lock.released)
}

func TestRunMigrations_ReleasesLockOnFailure(t *testing.T) {
	boom := errors.New("boom")
	stubGooseUp(t, boom)
	lock := &fakeLock{acquired: true}

	err := RunMigrations(context.Background(), nil, lock, testLogger())

	assert.ErrorIs(t, err, boom)
	assert.True(t, lock.released)
}

func TestRunMigrations_LockError(t *testing.T) {
	stubGooseUp(t, nil)
	lock := &fakeLock{acquireErr: errors.New("redis down")}

	err := RunMigrations(context.Background(), nil, lock, testLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_todos.sql"}, files)

	users, err := fs.ReadFile(migrations.Migrations, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "WHERE deleted_at IS NULL")
}
