package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/PedroMissola/analisador-relatorios/config"
	"github.com/PedroMissola/analisador-relatorios/store"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empresa.db")

	backend, closeFn, err := store.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, backend.InitializeSchema(ctx))
	counts, err := backend.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, workforce.Counts{}, counts)

	pending, total, err := backend.PendingPayroll(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
	assert.True(t, total.IsZero())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := store.Open(context.Background(), config.DBConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
