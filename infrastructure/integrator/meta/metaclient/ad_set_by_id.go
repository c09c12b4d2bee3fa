package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

const adSetFields = "id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget,budget_remaining,created_time,updated_time"

// GetAdSetByID busca um conjunto de anúncios diretamente no Meta. Usado pela
// engine de orçamento para validar o estado corrente antes de qualquer
// mutação.
func (c *MetaClient) GetAdSetByID(ctx context.Context, adsetID string) (*metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", adSetFields)

	body, err := c.Get(ctx, adsetID, params)
	if err != nil {
		return nil, err
	}

	adset := &metadomain.AdSet{}
	if err := json.Unmarshal(body, adset); err != nil {
		return nil, fmt.Errorf("erro ao decodificar conjunto de anúncios: %w", err)
	}

	return adset, nil
}
