package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api"
	"github.com/vfg2006/ads-manager-api/internal/api/handler"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	activityRepo := repository.NewAccountActivityRepository(pgConn)
	insightRepo := repository.NewAdSetInsightRepository(pgConn)
	budgetLogRepo := repository.NewBudgetLogRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	syncService := syncing.NewService(
		cfg,
		metaIntegrator,
		campaignRepo,
		adSetRepo,
		adRepo,
		leadRepo,
		activityRepo,
		insightRepo,
	)

	budgetService := budgeting.NewService(cfg, metaIntegrator, budgetLogRepo, adSetRepo)

	entitySyncService := scheduler.NewEntitySyncService(syncService, cfg)
	insightSyncService := scheduler.NewInsightSyncService(syncService, budgetService, cfg)

	if err := entitySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de entidades")
	} else {
		logrus.Info("Agendador de sincronização de entidades iniciado com sucesso")
	}

	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		budgetService,
		metaIntegrator,
		metaIntegrator,
		handler.EntityRepositories{
			Campaigns:  campaignRepo,
			AdSets:     adSetRepo,
			Ads:        adRepo,
			Leads:      leadRepo,
			Activities: activityRepo,
			Insights:   insightRepo,
		},
		handler.SyncServices{
			EntitySync:  entitySyncService,
			InsightSync: insightSyncService,
		},
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
		ForceColors:     log.IsDevelopment(),
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
