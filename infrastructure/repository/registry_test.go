package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreate(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAgentRepository(conn)

	before := countRows(t, conn, "agents")

	id1, err := repo.ResolveOrCreate(conn, "Carlos Lima")
	require.NoError(t, err)
	assert.Greater(t, id1, int64(0))

	// Resolver o mesmo nome de novo devolve o mesmo id sem criar outra linha
	id2, err := repo.ResolveOrCreate(conn, "Carlos Lima")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, before+1, countRows(t, conn, "agents"))
}

func TestResolveOrCreateNomeExistente(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewCategoryRepository(conn)

	// "Auto" faz parte do seed; resolver não pode duplicar
	before := countRows(t, conn, "categories")

	id, err := repo.ResolveOrCreate(conn, "Auto")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
	assert.Equal(t, before, countRows(t, conn, "categories"))
}

func TestListNamesOrdenado(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewLeadSourceRepository(conn)

	names, err := repo.ListNames()
	require.NoError(t, err)

	expected := []string{"Email", "Inbound Call", "Other", "Referral", "Social", "Walk-in", "Web Lead"}
	assert.Equal(t, expected, names)
}
