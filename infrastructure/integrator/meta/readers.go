package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type pageEnvelope struct {
	Data   []json.RawMessage `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// fetchAllPages percorre a paginação por cursor de um endpoint de coleção.
// As páginas são buscadas estritamente em ordem (cada cursor depende da
// resposta anterior); erro em qualquer página aborta a busca inteira e nenhum
// resultado parcial é retornado.
func (s *MetaIntegrator) fetchAllPages(ctx context.Context, path string, params url.Values) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, 0)

	for {
		body, err := s.Client.Get(ctx, path, params)
		if err != nil {
			return nil, err
		}

		var page pageEnvelope
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("erro ao decodificar página de %s: %w", path, err)
		}

		results = append(results, page.Data...)

		if page.Paging.Next == "" {
			break
		}

		path, params, err = metaclient.NormalizeNext(page.Paging.Next)
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (s *MetaIntegrator) accountPath(family string) string {
	return fmt.Sprintf("act_%s/%s", s.cfg.Meta.AccountID, family)
}

func (s *MetaIntegrator) listParams(fields string) url.Values {
	params := url.Values{}
	params.Add("fields", fields)
	params.Add("limit", strconv.Itoa(s.cfg.Meta.PageSize))
	return params
}

// FetchActiveCampaigns busca as campanhas com entrega ativa da conta. O
// filtro de effective_status da própria plataforma é a fonte de verdade do
// que está ativo.
func (s *MetaIntegrator) FetchActiveCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	params := s.listParams("id,name,status,effective_status,objective,created_time,updated_time")
	params.Add("effective_status", `["ACTIVE"]`)

	rows, err := s.fetchAllPages(ctx, s.accountPath("campaigns"), params)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.Campaign{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).Warn("Campanha com payload inválido, pulando linha")
			continue
		}
		campaigns = append(campaigns, wire.ToDomain())
	}

	return campaigns, nil
}

// FetchActiveAdSets busca os conjuntos de anúncios ativos da conta, com os
// campos de orçamento usados pela engine de ajuste.
func (s *MetaIntegrator) FetchActiveAdSets(ctx context.Context) ([]*domain.AdSet, error) {
	params := s.listParams("id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget,budget_remaining,created_time,updated_time")
	params.Add("effective_status", `["ACTIVE"]`)

	rows, err := s.fetchAllPages(ctx, s.accountPath("adsets"), params)
	if err != nil {
		return nil, err
	}

	adsets := make([]*domain.AdSet, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.AdSet{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).Warn("Conjunto de anúncios com payload inválido, pulando linha")
			continue
		}
		adsets = append(adsets, wire.ToDomain())
	}

	return adsets, nil
}

// FetchActiveAds busca os anúncios ativos da conta.
func (s *MetaIntegrator) FetchActiveAds(ctx context.Context) ([]*domain.Ad, error) {
	params := s.listParams("id,name,status,effective_status,adset_id,campaign_id,created_time,updated_time")
	params.Add("effective_status", `["ACTIVE"]`)

	rows, err := s.fetchAllPages(ctx, s.accountPath("ads"), params)
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.Ad{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).Warn("Anúncio com payload inválido, pulando linha")
			continue
		}
		ads = append(ads, wire.ToDomain())
	}

	return ads, nil
}

// FetchLeadsByAd busca os leads capturados por um anúncio específico.
func (s *MetaIntegrator) FetchLeadsByAd(ctx context.Context, adID string) ([]*domain.Lead, error) {
	params := s.listParams("id,ad_id,form_id,created_time,field_data")

	rows, err := s.fetchAllPages(ctx, fmt.Sprintf("%s/leads", adID), params)
	if err != nil {
		return nil, err
	}

	leads := make([]*domain.Lead, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.Lead{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).WithField("ad_id", adID).Warn("Lead com payload inválido, pulando linha")
			continue
		}

		lead := wire.ToDomain()
		if lead.AdID == "" {
			lead.AdID = adID
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// FetchAccountActivities busca o log de atividades da conta desde o instante
// informado.
func (s *MetaIntegrator) FetchAccountActivities(ctx context.Context, since time.Time) ([]*domain.AccountActivity, error) {
	params := s.listParams("event_type,translated_event_type,object_id,object_name,event_time,extra_data")
	if !since.IsZero() {
		params.Add("since", strconv.FormatInt(since.Unix(), 10))
	}

	rows, err := s.fetchAllPages(ctx, s.accountPath("activities"), params)
	if err != nil {
		return nil, err
	}

	activities := make([]*domain.AccountActivity, 0, len(rows))
	for _, row := range rows {
		wire := &metadomain.Activity{}
		if err := json.Unmarshal(row, wire); err != nil {
			logrus.WithError(err).Warn("Atividade com payload inválido, pulando linha")
			continue
		}
		activities = append(activities, wire.ToDomain())
	}

	return activities, nil
}
