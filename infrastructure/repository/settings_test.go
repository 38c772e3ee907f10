package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
)

func TestGetMetaSemeada(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewSettingsRepository(conn)

	value, err := repo.Get(sqlite.GoalSettingKey)
	require.NoError(t, err)
	assert.Equal(t, "39500", value)
}

func TestGetChaveInexistente(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewSettingsRepository(conn)

	_, err := repo.Get("no_such_key")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSetSobrescreveValor(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewSettingsRepository(conn)

	require.NoError(t, repo.Set(sqlite.GoalSettingKey, "42000"))

	value, err := repo.Get(sqlite.GoalSettingKey)
	require.NoError(t, err)
	assert.Equal(t, "42000", value)

	// Sobrescrever não cria uma segunda linha para a mesma chave
	assert.Equal(t, 1, countRows(t, conn, settingsTable))
}

func TestSetChaveNova(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewSettingsRepository(conn)

	require.NoError(t, repo.Set("display_name", "Corretora Central"))

	value, err := repo.Get("display_name")
	require.NoError(t, err)
	assert.Equal(t, "Corretora Central", value)
}
