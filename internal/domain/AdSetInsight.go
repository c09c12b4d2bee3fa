package domain

import "time"

// AdSetInsightEntry é uma linha diária de métricas de um conjunto de anúncios
// (time_increment=1): uma linha por conjunto por dia do período solicitado.
type AdSetInsightEntry struct {
	ID          int64     `json:"id"`
	AdSetID     string    `json:"adset_id"`
	CampaignID  string    `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Reach       int64     `json:"reach"`
	Spend       float64   `json:"spend"`
	CTR         float64   `json:"ctr"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
