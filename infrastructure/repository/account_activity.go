package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	activitiesTable = "account_activities aa"
)

type AccountActivityRepository interface {
	Insert(activity *domain.AccountActivity) error
	ListRecent(limit uint64) ([]*domain.AccountActivity, error)
	LastEventTime() (*time.Time, error)
}

type accountActivityRepository struct {
	conn *postgres.Connection
}

func NewAccountActivityRepository(conn *postgres.Connection) AccountActivityRepository {
	return &accountActivityRepository{
		conn: conn,
	}
}

func (r *accountActivityRepository) Insert(activity *domain.AccountActivity) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("account_activities").
		Columns("event_type", "translated_event_type", "object_id", "object_name", "event_time", "extra_data").
		Values(
			activity.EventType,
			activity.TranslatedType,
			activity.ObjectID,
			activity.ObjectName,
			activity.EventTime,
			activity.ExtraData,
		).
		Suffix("ON CONFLICT DO NOTHING").
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

func (r *accountActivityRepository) ListRecent(limit uint64) ([]*domain.AccountActivity, error) {
	query, args, err := squirrel.
		Select("aa.id, aa.event_type, aa.translated_event_type, aa.object_id, aa.object_name, aa.event_time, aa.extra_data, aa.created_at").
		From(activitiesTable).
		OrderBy("aa.event_time DESC").
		Limit(limit).
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

	activities := make([]*domain.AccountActivity, 0)
	for rows.Next() {
		activity := &domain.AccountActivity{}
		err := rows.Scan(
			&activity.ID,
			&activity.EventType,
			&activity.TranslatedType,
			&activity.ObjectID,
			&activity.ObjectName,
			&activity.EventTime,
			&activity.ExtraData,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

// LastEventTime retorna o timestamp da atividade mais recente, usado como
// cursor incremental da próxima busca.
func (r *accountActivityRepository) LastEventTime() (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(aa.event_time)").
		From(activitiesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var last sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("erro ao buscar última atividade: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}
