package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardResponse reúne tudo que a página do dashboard exibe: a projeção
// de meta e os três resumos
type DashboardResponse struct {
	Summary     *domain.DashboardSummary   `json:"summary"`
	Agents      []domain.AgentSummary      `json:"agents"`
	Categories  []domain.CategorySummary   `json:"categories"`
	LeadSources []domain.LeadSourceSummary `json:"lead_sources"`
}

// GetDashboard retorna o resumo do dashboard com as visões agregadas
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetDashboardSummary()
		if err != nil {
			logrus.Error("Erro ao montar resumo do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo do dashboard", nil)
			return
		}

		agents, err := service.GetAgentSummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo por agente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo por agente", nil)
			return
		}

		categories, err := service.GetCategorySummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo por categoria:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo por categoria", nil)
			return
		}

		leadSources, err := service.GetLeadSourceSummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo por origem de lead:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo por origem de lead", nil)
			return
		}

		response := DashboardResponse{
			Summary:     summary,
			Agents:      agents,
			Categories:  categories,
			LeadSources: leadSources,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
