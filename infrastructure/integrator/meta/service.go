package meta

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// AdsReader expõe os readers de entidades consumidos pelo serviço de
// sincronização. Cada método percorre a paginação completa de uma família de
// endpoints; erro em qualquer página aborta a busca inteira.
type AdsReader interface {
	FetchActiveCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	FetchActiveAdSets(ctx context.Context) ([]*domain.AdSet, error)
	FetchActiveAds(ctx context.Context) ([]*domain.Ad, error)
	FetchLeadsByAd(ctx context.Context, adID string) ([]*domain.Lead, error)
	FetchAccountActivities(ctx context.Context, since time.Time) ([]*domain.AccountActivity, error)
	FetchAdSetInsights(ctx context.Context, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error)
	FetchCampaignInsights(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error)
}

// BudgetClient é a visão do integrador usada pela engine de ajuste de
// orçamento: lookup do estado corrente e mutação.
type BudgetClient interface {
	GetAdSet(ctx context.Context, adsetID string) (*domain.AdSet, error)
	UpdateAdSetBudget(ctx context.Context, adsetID string, form url.Values) (json.RawMessage, error)
	RateLimit() *domain.RateLimitSnapshot
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdSet busca o estado corrente de um conjunto no Meta e o converte para
// o domínio local.
func (s *MetaIntegrator) GetAdSet(ctx context.Context, adsetID string) (*domain.AdSet, error) {
	adset, err := s.Client.GetAdSetByID(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	return adset.ToDomain(), nil
}

// UpdateAdSetBudget aplica a mutação já validada pela engine de orçamento.
func (s *MetaIntegrator) UpdateAdSetBudget(ctx context.Context, adsetID string, form url.Values) (json.RawMessage, error) {
	return s.Client.UpdateAdSet(ctx, adsetID, form)
}

func (s *MetaIntegrator) RateLimit() *domain.RateLimitSnapshot {
	return s.Client.RateLimit()
}

var _ AdsReader = (*MetaIntegrator)(nil)
var _ BudgetClient = (*MetaIntegrator)(nil)
