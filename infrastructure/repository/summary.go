package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
	"github.com/corretorahub/sales-dashboard-api/internal/domain"
)

// SummaryRepository calcula as visões agregadas sob demanda, direto das
// tabelas de fatos e registros. Não há materialização nem cache: cada leitura
// reflete o estado corrente do banco.
type SummaryRepository interface {
	TotalPremium() (float64, error)
	AgentSummary() ([]domain.AgentSummary, error)
	CategorySummary() ([]domain.CategorySummary, error)
	LeadSourceSummary() ([]domain.LeadSourceSummary, error)
}

type summaryRepository struct {
	conn *sqlite.Connection
}

func NewSummaryRepository(conn *sqlite.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

func (r *summaryRepository) TotalPremium() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(e.premium), 0.0)").
		From(entriesTable + " e").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar prêmios: %w", err)
	}

	return total, nil
}

// summaryQuery monta o LEFT JOIN padrão das visões de resumo: toda linha do
// registro aparece, com somas zeradas quando não há lançamentos
func summaryQuery(table, alias, fk string) squirrel.SelectBuilder {
	return squirrel.
		Select(
			alias+".name",
			"COALESCE(SUM(e.quotes), 0) AS quotes",
			"COALESCE(SUM(e.sales), 0) AS sales",
			"COALESCE(SUM(e.premium), 0.0) AS total_premium",
		).
		From(fmt.Sprintf("%s %s", table, alias)).
		LeftJoin(fmt.Sprintf("%s e ON e.%s = %s.id", entriesTable, fk, alias)).
		GroupBy(alias+".id", alias+".name").
		OrderBy("total_premium DESC")
}

func (r *summaryRepository) AgentSummary() ([]domain.AgentSummary, error) {
	query, args, err := summaryQuery(agentsTable, "a", "agent_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.AgentSummary, 0)
	for rows.Next() {
		var s domain.AgentSummary
		if err := rows.Scan(&s.Agent, &s.Quotes, &s.Sales, &s.TotalPremium); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo por agente: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summaryRepository) CategorySummary() ([]domain.CategorySummary, error) {
	query, args, err := summaryQuery(categoriesTable, "c", "category_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.CategorySummary, 0)
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.Category, &s.Quotes, &s.Sales, &s.TotalPremium); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo por categoria: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summaryRepository) LeadSourceSummary() ([]domain.LeadSourceSummary, error) {
	query, args, err := summaryQuery(leadSourcesTable, "ls", "lead_source_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.LeadSourceSummary, 0)
	for rows.Next() {
		var s domain.LeadSourceSummary
		if err := rows.Scan(&s.LeadSource, &s.Quotes, &s.Sales, &s.TotalPremium); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo por origem de lead: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
