package domain

import "time"

type Ad struct {
	ExternalID      string       `json:"external_id"`
	AdSetID         string       `json:"adset_id"`
	CampaignID      string       `json:"campaign_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	CreatedTime     time.Time    `json:"created_time"`
	UpdatedTime     time.Time    `json:"updated_time"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
