package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
)

// InsightSyncService agenda a sincronização noturna de métricas diárias e, no
// mesmo ciclo, a varredura de reconciliação de registros de ajuste pendentes.
type InsightSyncService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config
	syncer    syncing.Syncer
	budgeter  budgeting.Budgeter

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func NewInsightSyncService(syncer syncing.Syncer, budgeter budgeting.Budgeter, cfg *config.Config) *InsightSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.InsightSync.CronSchedule,
		"lookback_days": cfg.InsightSync.LookbackDays,
		"sync_enabled":  cfg.InsightSync.Enabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &InsightSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		syncer:    syncer,
		budgeter:  budgeter,
	}
}

// Start inicia o agendador
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.cfg.InsightSync.Enabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.InsightSync.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.cfg.InsightSync.CronSchedule).Do(func() {
		s.runCycle(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightSyncService) runCycle(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.lastError = ""
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de sincronização de métricas")

	saved, err := s.syncer.SyncInsights(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de métricas")
		s.setLastError(err.Error())
	} else {
		logrus.WithField("entries", saved).Info("Métricas diárias sincronizadas")
	}

	summary, err := s.budgeter.Reconcile(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de registros de ajuste pendentes")
		s.setLastError(err.Error())
	} else if summary.Checked > 0 {
		logrus.WithFields(logrus.Fields{
			"checked":   summary.Checked,
			"confirmed": summary.Confirmed,
			"failed":    summary.Failed,
			"errors":    summary.Errors,
		}).Info("Varredura de registros pendentes concluída")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Ciclo de sincronização de métricas concluído")
}

func (s *InsightSyncService) setLastError(msg string) {
	s.syncMutex.Lock()
	s.lastError = msg
	s.syncMutex.Unlock()
}

// Status retorna o estado corrente do agendador.
func (s *InsightSyncService) Status() *Status {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &Status{
		Enabled:      s.cfg.InsightSync.Enabled,
		Running:      s.syncRunning,
		CronSchedule: s.cfg.InsightSync.CronSchedule,
		LastError:    s.lastError,
	}
	if !s.lastSyncStartedAt.IsZero() {
		started := s.lastSyncStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completed := s.lastSyncCompletedAt
		status.LastCompletedAt = &completed
	}

	return status
}
