package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	adsTable = "ads a"
)

type AdRepository interface {
	List() ([]*domain.Ad, error)
	ListActiveIDs() ([]string, error)
	ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error)
	SaveOrUpdate(ad *domain.Ad) error
	MarkInactive(externalID string) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) List() ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select("a.external_id, a.adset_id, a.campaign_id, a.name, a.status, a.effective_status, a.created_time, a.updated_time, a.created_at, a.updated_at").
		From(adsTable).
		OrderBy("a.name ASC").
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		err := rows.Scan(
			&ad.ExternalID,
			&ad.AdSetID,
			&ad.CampaignID,
			&ad.Name,
			&ad.Status,
			&ad.EffectiveStatus,
			&ad.CreatedTime,
			&ad.UpdatedTime,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

// ListActiveIDs retorna os IDs dos anúncios ativos no espelho local. A busca
// de leads itera sobre eles.
func (r *adRepository) ListActiveIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("a.external_id").
		From(adsTable).
		Where(squirrel.Eq{"a.status": domain.StatusActive}).
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear ID de anúncio: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *adRepository) ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("a.external_id").
		From(adsTable).
		Where(squirrel.NotEq{"a.status": status}).
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
			return nil, fmt.Errorf("erro ao escanear ID de anúncio: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *adRepository) SaveOrUpdate(ad *domain.Ad) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ads").
		Columns("external_id", "adset_id", "campaign_id", "name", "status", "effective_status", "created_time", "updated_time").
		Values(
			ad.ExternalID,
			ad.AdSetID,
			ad.CampaignID,
			ad.Name,
			ad.Status,
			ad.EffectiveStatus,
			ad.CreatedTime,
			ad.UpdatedTime,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				adset_id = EXCLUDED.adset_id,
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
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

func (r *adRepository) MarkInactive(externalID string) error {
	query, args, err := squirrel.
		Update("ads").
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
