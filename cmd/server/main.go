package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prakanlife/meta-ads-sync/infrastructure/database/postgres"
	"github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository"
	"github.com/prakanlife/meta-ads-sync/internal/api"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/scheduler"
	"github.com/prakanlife/meta-ads-sync/internal/sync"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	credentialRepo := repository.NewCredentialRepository(pgConn)
	adPerfRepo := repository.NewAdPerformanceRepository(pgConn)
	productPerfRepo := repository.NewProductPerformanceRepository(pgConn)
	audienceRepo := repository.NewAudienceBreakdownRepository(pgConn)

	newClient := func(token string) metaclient.Client {
		return metaclient.NewClient(cfg, token)
	}

	exchanger := sync.NewTokenExchanger(cfg, credentialRepo)
	adFetcher := sync.NewAdInsightsFetcher(cfg, newClient, adPerfRepo, productPerfRepo)
	audienceFetcher := sync.NewAudienceInsightsFetcher(cfg, newClient, audienceRepo)

	orchestrator := sync.NewOrchestrator(cfg, credentialRepo, exchanger, adFetcher, audienceFetcher)

	metaSyncService := scheduler.NewMetaSyncService(cfg, orchestrator)
	if err := metaSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Could not start the Meta sync scheduler")
	} else {
		logrus.Info("Meta sync scheduler started")
	}

	server, err := api.New(cfg, metaSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Could not ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
