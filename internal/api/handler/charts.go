package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
	"github.com/corretorahub/sales-dashboard-api/pkg/utils"
)

// GetAgentPremiumChart retorna labels e valores do gráfico de prêmio por agente
func GetAgentPremiumChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.GetAgentSummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo por agente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados do gráfico", nil)
			return
		}

		series := domain.ChartSeries{
			Labels: make([]string, 0, len(summaries)),
			Values: make([]float64, 0, len(summaries)),
		}
		for _, summary := range summaries {
			series.Labels = append(series.Labels, summary.Agent)
			series.Values = append(series.Values, utils.RoundWithTwoDecimalPlace(summary.TotalPremium))
		}

		writeChart(w, series)
	}
}

// GetCategoryPremiumChart retorna labels e valores do gráfico de prêmio por categoria
func GetCategoryPremiumChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.GetCategorySummary()
		if err != nil {
			logrus.Error("Erro ao buscar resumo por categoria:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados do gráfico", nil)
			return
		}

		series := domain.ChartSeries{
			Labels: make([]string, 0, len(summaries)),
			Values: make([]float64, 0, len(summaries)),
		}
		for _, summary := range summaries {
			series.Labels = append(series.Labels, summary.Category)
			series.Values = append(series.Values, utils.RoundWithTwoDecimalPlace(summary.TotalPremium))
		}

		writeChart(w, series)
	}
}

func writeChart(w http.ResponseWriter, series domain.ChartSeries) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(series); err != nil {
		logrus.Error("Erro ao enviar resposta do gráfico:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
