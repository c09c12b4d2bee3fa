package budgeting

import (
	"context"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Budgeter é a engine de ajuste de orçamento: toda mutação de orçamento no
// Meta passa por aqui, com validação, regras de segurança e auditoria.
type Budgeter interface {
	Adjust(ctx context.Context, adsetID string, req *domain.AdjustBudgetRequest) (*domain.AdjustBudgetResult, error)
	Rollback(ctx context.Context, logID string, reason string) (*domain.AdjustBudgetResult, error)
	Reconcile(ctx context.Context) (*domain.BudgetReconcileSummary, error)
	ListLogs(adsetID string, limit uint64) ([]*domain.BudgetAdjustmentLog, error)
}
