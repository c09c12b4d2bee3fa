package domain

import "time"

type Campaign struct {
	ExternalID      string       `json:"external_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	Objective       string       `json:"objective"`
	CreatedTime     time.Time    `json:"created_time"`
	UpdatedTime     time.Time    `json:"updated_time"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
