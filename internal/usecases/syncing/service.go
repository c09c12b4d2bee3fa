package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Janela de busca de atividades quando o banco ainda não tem nenhum evento.
const defaultActivityLookback = 30 * 24 * time.Hour

// Service implementa Syncer reconciliando o espelho local contra o conjunto
// ativo retornado pelo Meta. A busca é fail-closed (erro em qualquer página
// aborta a família inteira e nada é marcado como inativo); a persistência é
// fail-open (erro em uma linha não interrompe as demais).
type Service struct {
	cfg          *config.Config
	reader       meta.AdsReader
	campaignRepo repository.CampaignRepository
	adSetRepo    repository.AdSetRepository
	adRepo       repository.AdRepository
	leadRepo     repository.LeadRepository
	activityRepo repository.AccountActivityRepository
	insightRepo  repository.AdSetInsightRepository
}

func NewService(
	cfg *config.Config,
	reader meta.AdsReader,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	leadRepo repository.LeadRepository,
	activityRepo repository.AccountActivityRepository,
	insightRepo repository.AdSetInsightRepository,
) Syncer {
	return &Service{
		cfg:          cfg,
		reader:       reader,
		campaignRepo: campaignRepo,
		adSetRepo:    adSetRepo,
		adRepo:       adRepo,
		leadRepo:     leadRepo,
		activityRepo: activityRepo,
		insightRepo:  insightRepo,
	}
}

// SyncFamily sincroniza uma única família de entidades.
func (s *Service) SyncFamily(ctx context.Context, family domain.EntityFamily) (*domain.SyncSummary, error) {
	switch family {
	case domain.FamilyCampaigns:
		return s.syncCampaigns(ctx)
	case domain.FamilyAdSets:
		return s.syncAdSets(ctx)
	case domain.FamilyAds:
		return s.syncAds(ctx)
	default:
		return nil, fmt.Errorf("família de entidades desconhecida: %s", family)
	}
}

// SyncAll sincroniza as três famílias na ordem campanhas, conjuntos e
// anúncios. O erro de uma família não impede as seguintes.
func (s *Service) SyncAll(ctx context.Context) ([]*domain.SyncSummary, error) {
	families := []domain.EntityFamily{domain.FamilyCampaigns, domain.FamilyAdSets, domain.FamilyAds}

	summaries := make([]*domain.SyncSummary, 0, len(families))
	var failed []string

	for _, family := range families {
		summary, err := s.SyncFamily(ctx, family)
		if err != nil {
			logrus.WithError(err).Errorf("Falha ao sincronizar família %s", family)
			failed = append(failed, string(family))
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(failed) > 0 {
		return summaries, fmt.Errorf("falha ao sincronizar famílias: %v", failed)
	}

	return summaries, nil
}

func (s *Service) syncCampaigns(ctx context.Context) (*domain.SyncSummary, error) {
	fetched, err := s.reader.FetchActiveCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas ativas no Meta")
	}

	summary := &domain.SyncSummary{Family: domain.FamilyCampaigns}

	// O conjunto ativo vem da busca, não dos upserts bem-sucedidos. Uma falha
	// de persistência nunca pode rebaixar uma entidade que continua viva.
	active := make(map[string]struct{}, len(fetched))
	for _, campaign := range fetched {
		active[campaign.ExternalID] = struct{}{}

		if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar campanha %s", campaign.ExternalID)
			summary.RowErrors++
			continue
		}
		summary.Synced++
	}

	known, err := s.campaignRepo.ListIDsWhereStatusNot(domain.StatusInactive)
	if err != nil {
		return summary, errors.Wrap(err, "erro ao listar campanhas conhecidas")
	}

	for externalID := range known {
		if _, ok := active[externalID]; ok {
			continue
		}
		if err := s.campaignRepo.MarkInactive(externalID); err != nil {
			logrus.WithError(err).Errorf("Falha ao marcar campanha %s como inativa", externalID)
			summary.RowErrors++
			continue
		}
		summary.MarkedInactive++
	}

	return summary, nil
}

func (s *Service) syncAdSets(ctx context.Context) (*domain.SyncSummary, error) {
	fetched, err := s.reader.FetchActiveAdSets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar conjuntos ativos no Meta")
	}

	summary := &domain.SyncSummary{Family: domain.FamilyAdSets}

	active := make(map[string]struct{}, len(fetched))
	for _, adset := range fetched {
		active[adset.ExternalID] = struct{}{}

		if err := s.adSetRepo.SaveOrUpdate(adset); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar conjunto %s", adset.ExternalID)
			summary.RowErrors++
			continue
		}
		summary.Synced++
	}

	known, err := s.adSetRepo.ListIDsWhereStatusNot(domain.StatusInactive)
	if err != nil {
		return summary, errors.Wrap(err, "erro ao listar conjuntos conhecidos")
	}

	for externalID := range known {
		if _, ok := active[externalID]; ok {
			continue
		}
		if err := s.adSetRepo.MarkInactive(externalID); err != nil {
			logrus.WithError(err).Errorf("Falha ao marcar conjunto %s como inativo", externalID)
			summary.RowErrors++
			continue
		}
		summary.MarkedInactive++
	}

	return summary, nil
}

func (s *Service) syncAds(ctx context.Context) (*domain.SyncSummary, error) {
	fetched, err := s.reader.FetchActiveAds(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar anúncios ativos no Meta")
	}

	summary := &domain.SyncSummary{Family: domain.FamilyAds}

	active := make(map[string]struct{}, len(fetched))
	for _, ad := range fetched {
		active[ad.ExternalID] = struct{}{}

		if err := s.adRepo.SaveOrUpdate(ad); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar anúncio %s", ad.ExternalID)
			summary.RowErrors++
			continue
		}
		summary.Synced++
	}

	known, err := s.adRepo.ListIDsWhereStatusNot(domain.StatusInactive)
	if err != nil {
		return summary, errors.Wrap(err, "erro ao listar anúncios conhecidos")
	}

	for externalID := range known {
		if _, ok := active[externalID]; ok {
			continue
		}
		if err := s.adRepo.MarkInactive(externalID); err != nil {
			logrus.WithError(err).Errorf("Falha ao marcar anúncio %s como inativo", externalID)
			summary.RowErrors++
			continue
		}
		summary.MarkedInactive++
	}

	return summary, nil
}

// SyncLeads busca os leads de cada anúncio ativo e os persiste em lote.
// A falha de um anúncio não interrompe os demais.
func (s *Service) SyncLeads(ctx context.Context) (int, error) {
	adIDs, err := s.adRepo.ListActiveIDs()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao listar anúncios ativos")
	}

	total := 0
	for _, adID := range adIDs {
		leads, err := s.reader.FetchLeadsByAd(ctx, adID)
		if err != nil {
			logrus.WithError(err).Errorf("Falha ao buscar leads do anúncio %s", adID)
			continue
		}
		if len(leads) == 0 {
			continue
		}

		if err := s.leadRepo.SaveBatch(ctx, leads); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar leads do anúncio %s", adID)
			continue
		}
		total += len(leads)
	}

	return total, nil
}

// SyncActivities busca as atividades da conta a partir do último evento já
// persistido. Entradas repetidas são descartadas pelo banco.
func (s *Service) SyncActivities(ctx context.Context) (int, error) {
	since := time.Now().Add(-defaultActivityLookback)

	last, err := s.activityRepo.LastEventTime()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar última atividade registrada")
	}
	if last != nil {
		since = *last
	}

	activities, err := s.reader.FetchAccountActivities(ctx, since)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar atividades da conta no Meta")
	}

	saved := 0
	for _, activity := range activities {
		if err := s.activityRepo.Insert(activity); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar atividade %s de %s", activity.EventType, activity.EventTime)
			continue
		}
		saved++
	}

	return saved, nil
}

// SyncInsights busca as métricas diárias dos conjuntos para a janela de
// lookback configurada e faz upsert linha a linha.
func (s *Service) SyncInsights(ctx context.Context) (int, error) {
	lookback := s.cfg.InsightSync.LookbackDays
	if lookback <= 0 {
		lookback = 7
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -lookback)

	entries, err := s.reader.FetchAdSetInsights(ctx, startDate, endDate)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar métricas de conjuntos no Meta")
	}

	saved := 0
	for _, entry := range entries {
		if err := s.insightRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithError(err).Errorf("Falha ao salvar métricas do conjunto %s em %s", entry.AdSetID, entry.Date.Format("2006-01-02"))
			continue
		}
		saved++
	}

	if retention := s.cfg.InsightSync.RetentionDays; retention > 0 {
		pruned, err := s.insightRepo.DeleteOlderThan(retention)
		if err != nil {
			logrus.WithError(err).Warn("Falha ao remover métricas antigas")
		} else if pruned > 0 {
			logrus.WithField("rows", pruned).Info("Métricas antigas removidas")
		}
	}

	return saved, nil
}
