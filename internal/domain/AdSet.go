package domain

import "time"

// AdSet é o espelho local de um conjunto de anúncios do Meta. Os valores de
// orçamento são armazenados na menor unidade da moeda (centavos), como a
// própria Graph API os transmite.
type AdSet struct {
	ExternalID      string       `json:"external_id"`
	CampaignID      string       `json:"campaign_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	DailyBudget     int64        `json:"daily_budget"`
	LifetimeBudget  int64        `json:"lifetime_budget"`
	BudgetRemaining int64        `json:"budget_remaining"`
	CreatedTime     time.Time    `json:"created_time"`
	UpdatedTime     time.Time    `json:"updated_time"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// HasBudget indica se o conjunto tem pelo menos um orçamento configurado no
// Meta. Conjuntos sem orçamento próprio (ex: CBO na campanha) não podem ser
// ajustados diretamente.
func (a *AdSet) HasBudget() bool {
	return a.DailyBudget > 0 || a.LifetimeBudget > 0
}
