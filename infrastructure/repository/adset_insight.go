package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	adSetInsightsTable = "adset_insights ai"
)

type AdSetInsightRepository interface {
	SaveOrUpdate(entry *domain.AdSetInsightEntry) error
	GetByAdSetAndRange(adsetID string, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error)
	DeleteOlderThan(days int) (int64, error)
}

type adSetInsightRepository struct {
	conn *postgres.Connection
}

func NewAdSetInsightRepository(conn *postgres.Connection) AdSetInsightRepository {
	return &adSetInsightRepository{
		conn: conn,
	}
}

func (r *adSetInsightRepository) SaveOrUpdate(entry *domain.AdSetInsightEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("adset_insights").
		Columns("adset_id", "campaign_id", "date", "impressions", "clicks", "reach", "spend", "ctr").
		Values(
			entry.AdSetID,
			entry.CampaignID,
			entry.Date.Format("2006-01-02"),
			entry.Impressions,
			entry.Clicks,
			entry.Reach,
			entry.Spend,
			entry.CTR,
		).
		Suffix(`
			ON CONFLICT (adset_id, date) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				reach = EXCLUDED.reach,
				spend = EXCLUDED.spend,
				ctr = EXCLUDED.ctr,
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

func (r *adSetInsightRepository) GetByAdSetAndRange(adsetID string, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.adset_id, ai.campaign_id, ai.date, ai.impressions, ai.clicks, ai.reach, ai.spend, ai.ctr, ai.created_at, ai.updated_at").
		From(adSetInsightsTable).
		Where(squirrel.Eq{"ai.adset_id": adsetID}).
		Where(squirrel.GtOrEq{"ai.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format("2006-01-02")}).
		OrderBy("ai.date ASC").
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

	entries := make([]*domain.AdSetInsightEntry, 0)
	for rows.Next() {
		entry := &domain.AdSetInsightEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.AdSetID,
			&entry.CampaignID,
			&entry.Date,
			&entry.Impressions,
			&entry.Clicks,
			&entry.Reach,
			&entry.Spend,
			&entry.CTR,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *adSetInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("adset_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
