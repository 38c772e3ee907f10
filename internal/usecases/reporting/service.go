// Package reporting monta as visões agregadas do dashboard. Cada leitura é
// recomputada por inteiro sobre o estado corrente do banco; não existe camada
// de cache.
package reporting

import (
	"time"

	"github.com/pkg/errors"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/repository"
	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/settings"
	"github.com/corretorahub/sales-dashboard-api/pkg/utils"
)

type Reporter interface {
	GetDashboardSummary() (*domain.DashboardSummary, error)
	GetAgentSummary() ([]domain.AgentSummary, error)
	GetCategorySummary() ([]domain.CategorySummary, error)
	GetLeadSourceSummary() ([]domain.LeadSourceSummary, error)
	ListRecentEntries(limit int) ([]domain.EntryView, error)
	ListAgentNames() ([]string, error)
	ListCategoryNames() ([]string, error)
	ListLeadSourceNames() ([]string, error)
}

type Service struct {
	summaries   repository.SummaryRepository
	entries     repository.EntryRepository
	agents      repository.RegistryRepository
	categories  repository.RegistryRepository
	leadSources repository.RegistryRepository
	goals       settings.GoalReader

	// now é trocado nos testes para fixar o mês de referência
	now func() time.Time
}

func NewService(
	summaries repository.SummaryRepository,
	entries repository.EntryRepository,
	agents repository.RegistryRepository,
	categories repository.RegistryRepository,
	leadSources repository.RegistryRepository,
	goals settings.GoalReader,
) *Service {
	return &Service{
		summaries:   summaries,
		entries:     entries,
		agents:      agents,
		categories:  categories,
		leadSources: leadSources,
		goals:       goals,
		now:         time.Now,
	}
}

// GetDashboardSummary calcula o total de prêmios, o avanço sobre a meta e a
// projeção linear de fechamento do mês corrente
func (s *Service) GetDashboardSummary() (*domain.DashboardSummary, error) {
	totalPremium, err := s.summaries.TotalPremium()
	if err != nil {
		return nil, errors.Wrap(err, "total de prêmios")
	}

	goal, err := s.goals.GetGoal()
	if err != nil {
		return nil, errors.Wrap(err, "meta da agência")
	}

	monthStart, daysInMonth, daysElapsed := utils.MonthWindow(s.now())

	summary := &domain.DashboardSummary{
		TotalPremium: totalPremium,
		Goal:         goal,
		PctToGoal:    pctOfGoal(totalPremium, goal),
		MonthStart:   monthStart.Format("2006-01-02"),
		DaysInMonth:  daysInMonth,
		DaysElapsed:  daysElapsed,
	}

	// Projeção linear: média diária até agora estendida para o mês inteiro
	if daysElapsed > 0 {
		summary.ProjectedMonthEndPremium = (totalPremium / float64(daysElapsed)) * float64(daysInMonth)
	}

	return summary, nil
}

// GetAgentSummary retorna os agentes ordenados por prêmio total, com o
// percentual da meta de cada um
func (s *Service) GetAgentSummary() ([]domain.AgentSummary, error) {
	summaries, err := s.summaries.AgentSummary()
	if err != nil {
		return nil, errors.Wrap(err, "resumo por agente")
	}

	goal, err := s.goals.GetGoal()
	if err != nil {
		return nil, errors.Wrap(err, "meta da agência")
	}

	for i := range summaries {
		summaries[i].PctOfGoal = pctOfGoal(summaries[i].TotalPremium, goal)
	}

	return summaries, nil
}

func (s *Service) GetCategorySummary() ([]domain.CategorySummary, error) {
	return s.summaries.CategorySummary()
}

func (s *Service) GetLeadSourceSummary() ([]domain.LeadSourceSummary, error) {
	return s.summaries.LeadSourceSummary()
}

func (s *Service) ListRecentEntries(limit int) ([]domain.EntryView, error) {
	return s.entries.ListRecent(limit)
}

func (s *Service) ListAgentNames() ([]string, error) {
	return s.agents.ListNames()
}

func (s *Service) ListCategoryNames() ([]string, error) {
	return s.categories.ListNames()
}

func (s *Service) ListLeadSourceNames() ([]string, error) {
	return s.leadSources.ListNames()
}

// pctOfGoal protege contra divisão por zero: meta zerada ou negativa resulta
// em percentual 0
func pctOfGoal(totalPremium, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return totalPremium / goal
}
