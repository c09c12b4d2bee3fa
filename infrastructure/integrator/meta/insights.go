package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// FetchAdSetInsights busca métricas diárias de todos os conjuntos da conta
// no período informado. Com time_increment=1 a API devolve uma linha por
// conjunto por dia: chamadores não podem assumir uma linha por conjunto.
func (s *MetaIntegrator) FetchAdSetInsights(ctx context.Context, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error) {
	return s.fetchInsights(ctx, s.accountPath("insights"), startDate, endDate)
}

// FetchCampaignInsights busca métricas diárias dos conjuntos de uma campanha
// específica no período informado.
func (s *MetaIntegrator) FetchCampaignInsights(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error) {
	return s.fetchInsights(ctx, fmt.Sprintf("%s/insights", campaignID), startDate, endDate)
}

func (s *MetaIntegrator) fetchInsights(ctx context.Context, path string, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error) {
	timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	params := s.listParams("adset_id,campaign_id,impressions,clicks,reach,spend,ctr")
	params.Add("level", "adset")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")

	rows, err := s.fetchAllPages(ctx, path, params)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.AdSetInsightEntry, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.AdSetInsight{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).Warn("Linha de insight com payload inválido, pulando")
			continue
		}

		if entry := wire.ToDomain(); entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
