package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
)

// Status é o estado corrente de um agendador de sincronização, exposto pela
// API de status.
type Status struct {
	Enabled         bool       `json:"enabled"`
	Running         bool       `json:"running"`
	CronSchedule    string     `json:"cron_schedule"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// EntitySyncService agenda a sincronização periódica de campanhas, conjuntos,
// anúncios, leads e atividades da conta. Execuções não se sobrepõem: um ciclo
// ainda em andamento faz o próximo disparo ser ignorado.
type EntitySyncService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config
	syncer    syncing.Syncer

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func NewEntitySyncService(syncer syncing.Syncer, cfg *config.Config) *EntitySyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.EntitySync.CronSchedule,
		"sync_enabled":  cfg.EntitySync.Enabled,
	}).Info("Configuração do agendador de sincronização de entidades carregada")

	return &EntitySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		syncer:    syncer,
	}
}

// Start inicia o agendador
func (s *EntitySyncService) Start(ctx context.Context) error {
	if !s.cfg.EntitySync.Enabled {
		logrus.Info("Sincronização de entidades desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.EntitySync.CronSchedule).Info("Iniciando agendador de sincronização de entidades")

	_, err := s.scheduler.Cron(s.cfg.EntitySync.CronSchedule).Do(func() {
		s.runCycle(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de entidades: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de entidades")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara um ciclo completo fora do agendamento. Retorna erro se já
// houver um ciclo em andamento.
func (s *EntitySyncService) RunNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("sincronização de entidades já em andamento")
	}
	s.syncMutex.Unlock()

	s.runCycle(ctx)
	return nil
}

// RunFamily sincroniza uma única família fora do agendamento.
func (s *EntitySyncService) RunFamily(ctx context.Context, family domain.EntityFamily) (*domain.SyncSummary, error) {
	return s.syncer.SyncFamily(ctx, family)
}

func (s *EntitySyncService) runCycle(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de entidades já em andamento, ignorando")
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

	logrus.Info("Iniciando ciclo de sincronização de entidades")

	summaries, err := s.syncer.SyncAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de entidades")
		s.setLastError(err.Error())
	}
	for _, summary := range summaries {
		logrus.WithFields(logrus.Fields{
			"family":          summary.Family,
			"synced":          summary.Synced,
			"marked_inactive": summary.MarkedInactive,
			"row_errors":      summary.RowErrors,
		}).Info("Família sincronizada")
	}

	leads, err := s.syncer.SyncLeads(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de leads")
		s.setLastError(err.Error())
	} else {
		logrus.WithField("leads", leads).Info("Leads sincronizados")
	}

	activities, err := s.syncer.SyncActivities(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de atividades")
		s.setLastError(err.Error())
	} else {
		logrus.WithField("activities", activities).Info("Atividades sincronizadas")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Ciclo de sincronização de entidades concluído")
}

func (s *EntitySyncService) setLastError(msg string) {
	s.syncMutex.Lock()
	s.lastError = msg
	s.syncMutex.Unlock()
}

// Status retorna o estado corrente do agendador.
func (s *EntitySyncService) Status() *Status {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &Status{
		Enabled:      s.cfg.EntitySync.Enabled,
		Running:      s.syncRunning,
		CronSchedule: s.cfg.EntitySync.CronSchedule,
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
