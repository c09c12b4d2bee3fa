package domain

import (
	"encoding/json"
	"time"
)

// BudgetType indica qual campo de orçamento do conjunto está sendo ajustado.
type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "daily"
	BudgetTypeLifetime BudgetType = "lifetime"
)

// TriggerType indica a origem da solicitação de ajuste.
type TriggerType string

const (
	TriggerAutomatic TriggerType = "automatic"
	TriggerManual    TriggerType = "manual"
	TriggerAPI       TriggerType = "api"
)

// AdjustmentStatus é o ciclo de vida de um registro de ajuste:
// pending -> applied | failed; cancelled para solicitações rejeitadas antes
// de qualquer chamada ao Meta. Um registro pending cuja mutação teve sucesso
// mas cuja atualização do log falhou é resolvido depois pela varredura de
// reconciliação, nunca reaplicado.
type AdjustmentStatus string

const (
	AdjustmentPending   AdjustmentStatus = "pending"
	AdjustmentApplied   AdjustmentStatus = "applied"
	AdjustmentFailed    AdjustmentStatus = "failed"
	AdjustmentCancelled AdjustmentStatus = "cancelled"
)

// BudgetAdjustmentLog é o registro de auditoria de uma tentativa de ajuste.
// Valores de orçamento em centavos.
type BudgetAdjustmentLog struct {
	ID                string           `json:"id"`
	AdSetID           string           `json:"adset_id"`
	BudgetType        BudgetType       `json:"budget_type"`
	OldBudget         int64            `json:"old_budget"`
	NewBudget         int64            `json:"new_budget"`
	AdjustmentAmount  int64            `json:"adjustment_amount"`
	AdjustmentPercent float64          `json:"adjustment_percent"`
	TriggerType       TriggerType      `json:"trigger_type"`
	Reason            string           `json:"reason"`
	Status            AdjustmentStatus `json:"status"`
	UpstreamResponse  json.RawMessage  `json:"upstream_response,omitempty"`
	ErrorMessage      *string          `json:"error_message,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	AppliedAt         *time.Time       `json:"applied_at,omitempty"`
}

// AdjustBudgetRequest é a solicitação de ajuste recebida pela engine.
// Valores em unidades da moeda (ex: 110.50); a engine converte para centavos
// antes de transmitir ao Meta.
type AdjustBudgetRequest struct {
	DailyBudget    *float64    `json:"daily_budget,omitempty"`
	LifetimeBudget *float64    `json:"lifetime_budget,omitempty"`
	Status         *string     `json:"status,omitempty"`
	TriggerType    TriggerType `json:"trigger_type,omitempty"`
	Reason         string      `json:"reason,omitempty"`
}

// AdjustmentError é o erro estruturado devolvido ao chamador. Chamadores
// decidem pelo Code/Type, nunca pelo texto da mensagem.
type AdjustmentError struct {
	Code    string `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// AdjustBudgetResult é o resultado estruturado de Adjust/Rollback: nunca uma
// exceção crua de transporte.
type AdjustBudgetResult struct {
	Success  bool                 `json:"success"`
	Warnings []string             `json:"warnings,omitempty"`
	Log      *BudgetAdjustmentLog `json:"log,omitempty"`
	Error    *AdjustmentError     `json:"error,omitempty"`
}

// BudgetReconcileSummary resume uma varredura de reconciliação de registros
// pendentes contra o orçamento corrente no Meta.
type BudgetReconcileSummary struct {
	Checked   int `json:"checked"`
	Confirmed int `json:"confirmed"`
	Failed    int `json:"failed"`
	Errors    int `json:"errors"`
}
