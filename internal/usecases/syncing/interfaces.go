package syncing

import (
	"context"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// EntitySyncer sincroniza as famílias de entidades (campanhas, conjuntos e
// anúncios) do Meta para o espelho local.
type EntitySyncer interface {
	SyncFamily(ctx context.Context, family domain.EntityFamily) (*domain.SyncSummary, error)
	SyncAll(ctx context.Context) ([]*domain.SyncSummary, error)
}

// Syncer é a interface completa do serviço de sincronização: entidades,
// leads, atividades da conta e métricas diárias.
type Syncer interface {
	EntitySyncer

	SyncLeads(ctx context.Context) (int, error)
	SyncActivities(ctx context.Context) (int, error)
	SyncInsights(ctx context.Context) (int, error)
}
