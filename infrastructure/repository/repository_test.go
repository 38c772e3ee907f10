package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
	"github.com/corretorahub/sales-dashboard-api/internal/config"
)

func newTestConnection(t *testing.T) *sqlite.Connection {
	t.Helper()

	conn, err := sqlite.NewConnection(context.Background(), config.Database{
		Path: filepath.Join(t.TempDir(), "agency.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })
	return conn
}

func countRows(t *testing.T, conn *sqlite.Connection, table string) int {
	t.Helper()

	var count int
	err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err)
	return count
}
