package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/internal/usecases/settings"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

// GoalRequest carrega o valor bruto da meta; a validação numérica é do usecase
type GoalRequest struct {
	Goal string `json:"goal"`
}

type GoalResponse struct {
	Goal float64 `json:"goal"`
}

// GetGoal retorna a meta mensal da agência
func GetGoal(service settings.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal, err := service.GetGoal()
		if err != nil {
			logrus.Error("Erro ao buscar meta da agência:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(GoalResponse{Goal: goal}); err != nil {
			logrus.Error("Erro ao enviar resposta da meta:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateGoal atualiza a meta mensal da agência
func UpdateGoal(service settings.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request GoalRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateGoal(request.Goal); err != nil {
			if errors.Is(err, settings.ErrInvalidGoal) || errors.Is(err, settings.ErrNegativeGoal) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logrus.Error("Erro ao atualizar meta da agência:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar meta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
