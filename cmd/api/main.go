package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/corretorahub/sales-dashboard-api/infrastructure/database/sqlite"
	"github.com/corretorahub/sales-dashboard-api/infrastructure/repository"
	"github.com/corretorahub/sales-dashboard-api/internal/api"
	"github.com/corretorahub/sales-dashboard-api/internal/config"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/importing"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/settings"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := sqliteConn(ctx, cfg.Database)
	defer conn.Close()

	agentRepo := repository.NewAgentRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	leadSourceRepo := repository.NewLeadSourceRepository(conn)
	entryRepo := repository.NewEntryRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)
	summaryRepo := repository.NewSummaryRepository(conn)

	settingsService := settings.NewService(settingsRepo)

	importingService := importing.NewService(
		conn,
		agentRepo,
		categoryRepo,
		leadSourceRepo,
		entryRepo,
	)

	reportingService := reporting.NewService(
		summaryRepo,
		entryRepo,
		agentRepo,
		categoryRepo,
		leadSourceRepo,
		settingsService,
	)

	server, err := api.New(
		cfg,
		reportingService,
		importingService,
		settingsService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sqliteConn abre o arquivo do banco, criando schema e seeds na primeira execução
func sqliteConn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco de dados SQLite")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco de dados")
	}

	logrus.WithField("path", dbConfig.Path).Info("Banco de dados SQLite pronto")
	return conn
}
