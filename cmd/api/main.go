package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/institutoins/kpi-manager-api/infrastructure/database/postgres"
	"github.com/institutoins/kpi-manager-api/infrastructure/repository"
	"github.com/institutoins/kpi-manager-api/internal/api"
	"github.com/institutoins/kpi-manager-api/internal/config"
	"github.com/institutoins/kpi-manager-api/internal/scheduler"
	"github.com/institutoins/kpi-manager-api/internal/usecases/importing"
	"github.com/institutoins/kpi-manager-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	kpiRepo := repository.NewKpiRepository(pgConn)
	dataPointRepo := repository.NewDataPointRepository(pgConn)

	reportService := reporting.NewService(kpiRepo, dataPointRepo)
	importService := importing.NewService(kpiRepo, dataPointRepo)

	semaforoRefreshService := scheduler.NewSemaforoRefreshService(kpiRepo, dataPointRepo, cfg)

	if err := semaforoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de semáforo")
	} else {
		logrus.Info("Agendador de snapshots de semáforo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		importService,
		semaforoRefreshService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
