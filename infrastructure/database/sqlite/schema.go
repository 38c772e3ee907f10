package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// GoalSettingKey é a chave da meta mensal da agência na tabela settings
const GoalSettingKey = "agency_goal"

const defaultGoal = "39500"

const schema = `
CREATE TABLE IF NOT EXISTS agents (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS lead_sources (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS entries (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_date     TEXT NOT NULL,
	agent_id       INTEGER NOT NULL REFERENCES agents(id) ON DELETE RESTRICT,
	category_id    INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
	quotes         INTEGER NOT NULL DEFAULT 0 CHECK (quotes >= 0),
	sales          INTEGER NOT NULL DEFAULT 0 CHECK (sales >= 0),
	premium        REAL NOT NULL DEFAULT 0 CHECK (premium >= 0),
	lead_source_id INTEGER REFERENCES lead_sources(id) ON DELETE SET NULL,
	created_at     TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_entries_agent ON entries(agent_id);
CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category_id);
CREATE INDEX IF NOT EXISTS idx_entries_lead_source ON entries(lead_source_id);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

var (
	seedAgents      = []string{"Agent 1", "Agent 2", "Agent 3", "Agent 4", "Agent 5"}
	seedCategories  = []string{"Auto", "Home", "Life", "Other"}
	seedLeadSources = []string{"Inbound Call", "Referral", "Walk-in", "Web Lead", "Email", "Social", "Other"}
)

// bootstrap cria o schema e os dados iniciais quando o arquivo do banco ainda
// não existe. Todas as instruções são idempotentes, então rodar de novo em um
// banco já populado não altera nada.
func bootstrap(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("erro ao criar tabelas: %w", err)
	}

	if err := seed(db); err != nil {
		return err
	}

	logrus.Info("Schema do banco de dados verificado com sucesso")
	return nil
}

func seed(db *sql.DB) error {
	for table, names := range map[string][]string{
		"agents":       seedAgents,
		"categories":   seedCategories,
		"lead_sources": seedLeadSources,
	} {
		for _, name := range names {
			query := fmt.Sprintf("INSERT INTO %s(name) VALUES (?) ON CONFLICT(name) DO NOTHING", table)
			if _, err := db.Exec(query, name); err != nil {
				return fmt.Errorf("erro ao popular %s: %w", table, err)
			}
		}
	}

	_, err := db.Exec(
		"INSERT INTO settings(key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING",
		GoalSettingKey, defaultGoal,
	)
	if err != nil {
		return fmt.Errorf("erro ao popular settings: %w", err)
	}

	return nil
}
