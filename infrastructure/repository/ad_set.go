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
	adSetsTable   = "ad_sets s"
	adSetsColumns = "s.external_id, s.campaign_id, s.name, s.status, s.effective_status, s.daily_budget, s.lifetime_budget, s.budget_remaining, s.created_time, s.updated_time, s.created_at, s.updated_at"
)

type AdSetRepository interface {
	GetByExternalID(externalID string) (*domain.AdSet, error)
	List() ([]*domain.AdSet, error)
	ListByCampaignID(campaignID string) ([]*domain.AdSet, error)
	ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error)
	SaveOrUpdate(adset *domain.AdSet) error
	MarkInactive(externalID string) error
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) GetByExternalID(externalID string) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetsColumns).
		From(adSetsTable).
		Where(squirrel.Eq{"s.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adset, err := r.scanAdSet(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conjunto de anúncios: %w", err)
	}

	return adset, nil
}

func (r *adSetRepository) List() ([]*domain.AdSet, error) {
	return r.list(nil)
}

func (r *adSetRepository) ListByCampaignID(campaignID string) ([]*domain.AdSet, error) {
	return r.list(squirrel.Eq{"s.campaign_id": campaignID})
}

func (r *adSetRepository) list(where interface{}) ([]*domain.AdSet, error) {
	builder := squirrel.
		Select(adSetsColumns).
		From(adSetsTable).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	adsets := make([]*domain.AdSet, 0)
	for rows.Next() {
		adset, err := r.scanAdSetRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conjunto de anúncios: %w", err)
		}
		adsets = append(adsets, adset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adsets, nil
}

func (r *adSetRepository) ListIDsWhereStatusNot(status domain.EntityStatus) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("s.external_id").
		From(adSetsTable).
		Where(squirrel.NotEq{"s.status": status}).
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
			return nil, fmt.Errorf("erro ao escanear ID de conjunto: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *adSetRepository) SaveOrUpdate(adset *domain.AdSet) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_sets").
		Columns("external_id", "campaign_id", "name", "status", "effective_status", "daily_budget", "lifetime_budget", "budget_remaining", "created_time", "updated_time").
		Values(
			adset.ExternalID,
			adset.CampaignID,
			adset.Name,
			adset.Status,
			adset.EffectiveStatus,
			adset.DailyBudget,
			adset.LifetimeBudget,
			adset.BudgetRemaining,
			adset.CreatedTime,
			adset.UpdatedTime,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				budget_remaining = EXCLUDED.budget_remaining,
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

func (r *adSetRepository) MarkInactive(externalID string) error {
	query, args, err := squirrel.
		Update("ad_sets").
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

func (r *adSetRepository) scanAdSet(row *sql.Row) (*domain.AdSet, error) {
	adset := &domain.AdSet{}
	err := row.Scan(
		&adset.ExternalID,
		&adset.CampaignID,
		&adset.Name,
		&adset.Status,
		&adset.EffectiveStatus,
		&adset.DailyBudget,
		&adset.LifetimeBudget,
		&adset.BudgetRemaining,
		&adset.CreatedTime,
		&adset.UpdatedTime,
		&adset.CreatedAt,
		&adset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return adset, nil
}

func (r *adSetRepository) scanAdSetRows(rows *sql.Rows) (*domain.AdSet, error) {
	adset := &domain.AdSet{}
	err := rows.Scan(
		&adset.ExternalID,
		&adset.CampaignID,
		&adset.Name,
		&adset.Status,
		&adset.EffectiveStatus,
		&adset.DailyBudget,
		&adset.LifetimeBudget,
		&adset.BudgetRemaining,
		&adset.CreatedTime,
		&adset.UpdatedTime,
		&adset.CreatedAt,
		&adset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return adset, nil
}
