package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/importing"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

// EntriesResponse alimenta a página de lançamentos: os nomes para os selects
// do formulário e os lançamentos mais recentes
type EntriesResponse struct {
	Agents      []string           `json:"agents"`
	Categories  []string           `json:"categories"`
	LeadSources []string           `json:"lead_sources"`
	Entries     []domain.EntryView `json:"entries"`
}

// ListEntries retorna os nomes cadastrados e os lançamentos mais recentes
func ListEntries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		agents, err := service.ListAgentNames()
		if err != nil {
			logrus.Error("Erro ao listar agentes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar agentes", nil)
			return
		}

		categories, err := service.ListCategoryNames()
		if err != nil {
			logrus.Error("Erro ao listar categorias:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias", nil)
			return
		}

		leadSources, err := service.ListLeadSourceNames()
		if err != nil {
			logrus.Error("Erro ao listar origens de lead:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar origens de lead", nil)
			return
		}

		entries, err := service.ListRecentEntries(limit)
		if err != nil {
			logrus.Error("Erro ao listar lançamentos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos", nil)
			return
		}

		response := EntriesResponse{
			Agents:      agents,
			Categories:  categories,
			LeadSources: leadSources,
			Entries:     entries,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error("Erro ao enviar resposta de lançamentos:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SubmitEntry recebe a submissão bruta chaveada por nomes e delega a
// normalização ao usecase de importação
func SubmitEntry(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission domain.EntrySubmission

		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.SubmitEntry(r.Context(), submission)
		if err != nil {
			if importing.IsValidationError(err) {
				code := apiErrors.ErrInvalidFormat
				if errors.Is(err, importing.ErrEntryDateRequired) ||
					errors.Is(err, importing.ErrAgentNameRequired) ||
					errors.Is(err, importing.ErrCategoryNameRequired) {
					code = apiErrors.ErrMissingRequiredData
				}

				apiErrors.WriteError(w, code, err.Error(), nil)
				return
			}

			logrus.Error("Erro ao importar lançamento:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar lançamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error("Erro ao enviar resposta do lançamento:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
