// Package settings expõe acessores tipados sobre o armazenamento chave/valor
// de configurações. A única chave usada pelo sistema é a meta mensal da
// agência.
package settings

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/repository"
)

type GoalReader interface {
	GetGoal() (float64, error)
}

type GoalManager interface {
	GoalReader
	// UpdateGoal valida o valor bruto e persiste; valores não numéricos ou
	// negativos são rejeitados sem alterar o estado armazenado
	UpdateGoal(raw string) error
}

type Service struct {
	settings repository.SettingsRepository
}

func NewService(settings repository.SettingsRepository) GoalManager {
	return &Service{
		settings: settings,
	}
}

func (s *Service) GetGoal() (float64, error) {
	value, err := s.settings.Get(sqlite.GoalSettingKey)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar meta da agência")
		return 0, ErrDatabaseOperation
	}

	goal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		// Valor corrompido fora do fluxo normal; tratar como meta indefinida
		logrus.WithField("value", value).Warn("Meta armazenada não é numérica")
		return 0, nil
	}

	return goal, nil
}

func (s *Service) UpdateGoal(raw string) error {
	goal, err := decimal.NewFromString(raw)
	if err != nil {
		return ErrInvalidGoal
	}

	if goal.IsNegative() {
		return ErrNegativeGoal
	}

	if err := s.settings.Set(sqlite.GoalSettingKey, goal.String()); err != nil {
		logrus.WithError(err).Error("Erro ao gravar meta da agência")
		return ErrDatabaseOperation
	}

	logrus.WithField("goal", goal.String()).Info("Meta da agência atualizada")
	return nil
}
