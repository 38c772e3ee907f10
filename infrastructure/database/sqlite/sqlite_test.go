package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corretorahub/sales-dashboard-api/internal/config"
)

func newTestConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), config.Database{
		Path: filepath.Join(t.TempDir(), "agency.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBootstrapSeeds(t *testing.T) {
	conn := newTestConnection(t)

	tests := []struct {
		table string
		want  int
	}{
		{table: "agents", want: 5},
		{table: "categories", want: 4},
		{table: "lead_sources", want: 7},
	}

	for _, tt := range tests {
		var count int
		err := conn.QueryRow("SELECT COUNT(*) FROM " + tt.table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, tt.want, count, "tabela %s", tt.table)
	}

	var goal string
	err := conn.QueryRow("SELECT value FROM settings WHERE key = ?", GoalSettingKey).Scan(&goal)
	require.NoError(t, err)
	assert.Equal(t, "39500", goal)
}

func TestBootstrapIdempotente(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "agency.db")

	conn, err := NewConnection(context.Background(), config.Database{Path: dbPath})
	require.NoError(t, err)

	// Alterações feitas após o primeiro bootstrap não podem ser desfeitas
	// por uma segunda inicialização sobre o mesmo arquivo
	_, err = conn.Exec("UPDATE settings SET value = '50000' WHERE key = ?", GoalSettingKey)
	require.NoError(t, err)
	_, err = conn.Exec("INSERT INTO agents(name) VALUES ('Maria Souza')")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = NewConnection(context.Background(), config.Database{Path: dbPath})
	require.NoError(t, err)
	defer conn.Close()

	var goal string
	err = conn.QueryRow("SELECT value FROM settings WHERE key = ?", GoalSettingKey).Scan(&goal)
	require.NoError(t, err)
	assert.Equal(t, "50000", goal)

	var agents int
	err = conn.QueryRow("SELECT COUNT(*) FROM agents").Scan(&agents)
	require.NoError(t, err)
	assert.Equal(t, 6, agents)
}

func TestForeignKeysAtivas(t *testing.T) {
	conn := newTestConnection(t)

	// agent_id inexistente deve ser rejeitado pelo banco
	_, err := conn.Exec(
		"INSERT INTO entries(entry_date, agent_id, category_id) VALUES ('2024-03-01', 9999, 1)",
	)
	assert.Error(t, err)
}

func TestRunInTransactionRollback(t *testing.T) {
	conn := newTestConnection(t)

	errBoom := errors.New("boom")
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO agents(name) VALUES ('Agente Fantasma')"); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	var count int
	err = conn.QueryRow("SELECT COUNT(*) FROM agents WHERE name = 'Agente Fantasma'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRunInTransactionCommit(t *testing.T) {
	conn := newTestConnection(t)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO agents(name) VALUES ('João Pereira')")
		return err
	})
	require.NoError(t, err)

	var count int
	err = conn.QueryRow("SELECT COUNT(*) FROM agents WHERE name = 'João Pereira'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
