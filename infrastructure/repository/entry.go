package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
	"github.com/corretorahub/sales-dashboard-api/internal/domain"
)

const (
	entriesTable = "entries"

	// DefaultEntryPageSize limita a listagem quando o chamador não informa limite
	DefaultEntryPageSize = 50
)

// NewEntry são os campos do fato já normalizados para inserção. CreatedAt é
// atribuído pelo banco no insert e o id é gerado; depois disso a linha é
// imutável (não há UPDATE nem DELETE de lançamentos).
type NewEntry struct {
	EntryDate    string
	AgentID      int64
	CategoryID   int64
	Quotes       int
	Sales        int
	Premium      float64
	LeadSourceID *int64
}

type EntryRepository interface {
	Append(runner sqlite.Queryer, entry NewEntry) (int64, error)
	ListRecent(limit int) ([]domain.EntryView, error)
}

type entryRepository struct {
	conn *sqlite.Connection
}

func NewEntryRepository(conn *sqlite.Connection) EntryRepository {
	return &entryRepository{
		conn: conn,
	}
}

func (r *entryRepository) Append(runner sqlite.Queryer, entry NewEntry) (int64, error) {
	query, args, err := squirrel.
		Insert(entriesTable).
		Columns("entry_date", "agent_id", "category_id", "quotes", "sales", "premium", "lead_source_id").
		Values(
			entry.EntryDate,
			entry.AgentID,
			entry.CategoryID,
			entry.Quotes,
			entry.Sales,
			entry.Premium,
			entry.LeadSourceID,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := runner.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter id do lançamento: %w", err)
	}

	return id, nil
}

func (r *entryRepository) ListRecent(limit int) ([]domain.EntryView, error) {
	if limit <= 0 {
		limit = DefaultEntryPageSize
	}

	// Ordenação por data e id descendentes garante recência estável mesmo
	// quando lançamentos chegam fora de ordem
	query, args, err := squirrel.
		Select(
			"e.id",
			"e.entry_date",
			"a.name AS agent",
			"c.name AS category",
			"e.quotes",
			"e.sales",
			"e.premium",
			"ls.name AS lead_source",
			"e.created_at",
		).
		From(entriesTable + " e").
		Join("agents a ON a.id = e.agent_id").
		Join("categories c ON c.id = e.category_id").
		LeftJoin("lead_sources ls ON ls.id = e.lead_source_id").
		OrderBy("e.entry_date DESC", "e.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.EntryView, 0)
	for rows.Next() {
		var entry domain.EntryView
		err := rows.Scan(
			&entry.ID,
			&entry.EntryDate,
			&entry.Agent,
			&entry.Category,
			&entry.Quotes,
			&entry.Sales,
			&entry.Premium,
			&entry.LeadSource,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
