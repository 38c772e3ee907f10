// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
)

const (
	agentsTable      = "agents"
	categoriesTable  = "categories"
	leadSourcesTable = "lead_sources"
)

// RegistryRepository é uma tabela de consulta de nomes únicos (agentes,
// categorias, origens de lead). Linhas são criadas preguiçosamente na primeira
// referência e nunca renomeadas ou removidas.
type RegistryRepository interface {
	// ResolveOrCreate retorna o id do nome, criando a linha se ainda não
	// existir. O runner permite participar da transação de importação.
	ResolveOrCreate(runner sqlite.Queryer, name string) (int64, error)
	ListNames() ([]string, error)
}

type registryRepository struct {
	conn  *sqlite.Connection
	table string
}

func NewAgentRepository(conn *sqlite.Connection) RegistryRepository {
	return &registryRepository{conn: conn, table: agentsTable}
}

func NewCategoryRepository(conn *sqlite.Connection) RegistryRepository {
	return &registryRepository{conn: conn, table: categoriesTable}
}

func NewLeadSourceRepository(conn *sqlite.Connection) RegistryRepository {
	return &registryRepository{conn: conn, table: leadSourcesTable}
}

func (r *registryRepository) ResolveOrCreate(runner sqlite.Queryer, name string) (int64, error) {
	// INSERT idempotente + SELECT: com a constraint UNIQUE em name, duas
	// importações concorrentes do mesmo nome nunca criam duas linhas
	insertSQL, insertArgs, err := squirrel.
		Insert(r.table).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT(name) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := runner.Exec(insertSQL, insertArgs...); err != nil {
		return 0, fmt.Errorf("erro ao inserir em %s: %w", r.table, err)
	}

	selectSQL, selectArgs, err := squirrel.
		Select("id").
		From(r.table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := runner.QueryRow(selectSQL, selectArgs...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao resolver nome em %s: %w", r.table, err)
	}

	return id, nil
}

func (r *registryRepository) ListNames() ([]string, error) {
	query, args, err := squirrel.
		Select("name").
		From(r.table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return names, nil
}
