package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	GetByExternalID(externalID string) (*domain.Campaign, error)
	List() ([]*domain.Campaign, error)
	ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error)
	SaveOrUpdate(campaign *domain.Campaign) error
	MarkInactive(externalID string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByExternalID(externalID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.external_id, c.name, c.status, c.effective_status, c.objective, c.created_time, c.updated_time, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	err = r.conn.QueryRow(query, args...).Scan(
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&campaign.EffectiveStatus,
		&campaign.Objective,
		&campaign.CreatedTime,
		&campaign.UpdatedTime,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List() ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.external_id, c.name, c.status, c.effective_status, c.objective, c.created_time, c.updated_time, c.created_at, c.updated_at").
		From(campaignsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		err := rows.Scan(
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Status,
			&campaign.EffectiveStatus,
			&campaign.Objective,
			&campaign.CreatedTime,
			&campaign.UpdatedTime,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// ListIDsWhereStatusNot retorna os IDs de todas as campanhas conhecidas cujo
// status local é diferente do informado. Usado pelo passo de demote da
// sincronização.
func (r *campaignRepository) ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("c.external_id").
		From(campaignsTable).
		Where(squirrel.NotEq{"c.status": status}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear ID de campanha: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("external_id", "name", "status", "effective_status", "objective", "created_time", "updated_time").
		Values(
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.EffectiveStatus,
			campaign.Objective,
			campaign.CreatedTime,
			campaign.UpdatedTime,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				objective = EXCLUDED.objective,
				created_time = EXCLUDED.created_time,
				updated_time = EXCLUDED.updated_time,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// MarkInactive demove o status local para INACTIVE. A linha nunca é deletada:
// a perda de visibilidade no Meta é registrada como mudança de status.
func (r *campaignRepository) MarkInactive(externalID string) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("status", domain.StatusInactive).
		Set("effective_status", domain.StatusInactive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
