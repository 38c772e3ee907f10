// Package importing normaliza submissões brutas de lançamentos: resolve os
// nomes de agente, categoria e origem de lead para chaves estrangeiras
// (criando os registros que ainda não existem) e insere o fato, tudo em uma
// única transação.
package importing

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/repository"
	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/pkg/log"
	"github.com/corretorahub/sales-dashboard-api/pkg/utils"
)

type Importer interface {
	SubmitEntry(ctx context.Context, submission domain.EntrySubmission) (*domain.Entry, error)
}

// Transactioner abre a transação que engloba os upserts de registro e o
// insert do fato
type Transactioner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	conn        Transactioner
	agents      repository.RegistryRepository
	categories  repository.RegistryRepository
	leadSources repository.RegistryRepository
	entries     repository.EntryRepository
}

func NewService(
	conn Transactioner,
	agents repository.RegistryRepository,
	categories repository.RegistryRepository,
	leadSources repository.RegistryRepository,
	entries repository.EntryRepository,
) Importer {
	return &Service{
		conn:        conn,
		agents:      agents,
		categories:  categories,
		leadSources: leadSources,
		entries:     entries,
	}
}

// SubmitEntry valida e normaliza a submissão e grava o lançamento. Toda a
// validação acontece antes de qualquer escrita: uma submissão rejeitada não
// cria linha de registro nem de fato.
func (s *Service) SubmitEntry(ctx context.Context, submission domain.EntrySubmission) (*domain.Entry, error) {
	newEntry, err := s.normalize(submission)
	if err != nil {
		return nil, err
	}

	leadSourceName := strings.TrimSpace(submission.LeadSourceName)

	entry := &domain.Entry{
		EntryDate: newEntry.EntryDate,
		Quotes:    newEntry.Quotes,
		Sales:     newEntry.Sales,
		Premium:   newEntry.Premium,
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		agentID, err := s.agents.ResolveOrCreate(tx, strings.TrimSpace(submission.AgentName))
		if err != nil {
			return errors.Wrap(err, "resolver agente")
		}

		categoryID, err := s.categories.ResolveOrCreate(tx, strings.TrimSpace(submission.CategoryName))
		if err != nil {
			return errors.Wrap(err, "resolver categoria")
		}

		newEntry.AgentID = agentID
		newEntry.CategoryID = categoryID

		if leadSourceName != "" {
			leadSourceID, err := s.leadSources.ResolveOrCreate(tx, leadSourceName)
			if err != nil {
				return errors.Wrap(err, "resolver origem de lead")
			}
			newEntry.LeadSourceID = &leadSourceID
		}

		entryID, err := s.entries.Append(tx, *newEntry)
		if err != nil {
			return errors.Wrap(err, "inserir lançamento")
		}

		entry.ID = entryID
		entry.AgentID = agentID
		entry.CategoryID = categoryID
		entry.LeadSourceID = newEntry.LeadSourceID

		return nil
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro na transação de importação de lançamento")
		return nil, ErrDatabaseOperation
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"entry_id":   entry.ID,
		"entry_date": entry.EntryDate,
	}).Info("Lançamento importado com sucesso")

	return entry, nil
}

// normalize aplica a validação de campos obrigatórios e a coerção numérica,
// sem tocar no banco
func (s *Service) normalize(submission domain.EntrySubmission) (*repository.NewEntry, error) {
	entryDate := strings.TrimSpace(submission.EntryDate)
	if entryDate == "" {
		return nil, newValidationError(ErrEntryDateRequired, "entry_date")
	}

	if strings.TrimSpace(submission.AgentName) == "" {
		return nil, newValidationError(ErrAgentNameRequired, "agent_name")
	}

	if strings.TrimSpace(submission.CategoryName) == "" {
		return nil, newValidationError(ErrCategoryNameRequired, "category_name")
	}

	if _, err := utils.ParseDate(entryDate); err != nil {
		return nil, newValidationError(ErrInvalidEntryDate, "entry_date")
	}

	quotes, err := coerceCount(submission.Quotes)
	if err != nil {
		return nil, newValidationError(ErrInvalidQuotes, "quotes")
	}

	sales, err := coerceCount(submission.Sales)
	if err != nil {
		return nil, newValidationError(ErrInvalidSales, "sales")
	}

	premium, err := coercePremium(submission.Premium)
	if err != nil {
		return nil, newValidationError(ErrInvalidPremium, "premium")
	}

	return &repository.NewEntry{
		EntryDate: entryDate,
		Quotes:    quotes,
		Sales:     sales,
		Premium:   premium,
	}, nil
}

// coerceCount trata vazio como 0 e rejeita valores não numéricos ou negativos
func coerceCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if value < 0 {
		return 0, errors.New("valor negativo")
	}

	return value, nil
}

// coercePremium usa decimal para aceitar exatamente o que é numérico, sem as
// folgas de ParseFloat com notação científica sobrando no banco
func coercePremium(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}

	if value.IsNegative() {
		return 0, errors.New("valor negativo")
	}

	return value.InexactFloat64(), nil
}
