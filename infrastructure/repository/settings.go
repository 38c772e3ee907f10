package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
)

const settingsTable = "settings"

// ErrSettingNotFound indica que a chave não existe na tabela settings
var ErrSettingNotFound = errors.New("configuração não encontrada")

// SettingsRepository é o armazenamento chave/valor de uma linha por chave.
// Valores persistem até serem sobrescritos explicitamente; nada é removido.
type SettingsRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type settingsRepository struct {
	conn *sqlite.Connection
}

func NewSettingsRepository(conn *sqlite.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (r *settingsRepository) Get(key string) (string, error) {
	query, args, err := squirrel.
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	if err := r.conn.QueryRow(query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	return value, nil
}

func (r *settingsRepository) Set(key, value string) error {
	query, args, err := squirrel.
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar configuração: %w", err)
	}

	return nil
}
