package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	leadsTable = "leads l"
)

type LeadRepository interface {
	ListRecent(limit uint64) ([]*domain.Lead, error)
	ListByAdID(adID string) ([]*domain.Lead, error)
	SaveBatch(ctx context.Context, leads []*domain.Lead) error
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) ListRecent(limit uint64) ([]*domain.Lead, error) {
	return r.list(nil, limit)
}

func (r *leadRepository) ListByAdID(adID string) ([]*domain.Lead, error) {
	return r.list(squirrel.Eq{"l.ad_id": adID}, 0)
}

func (r *leadRepository) list(where interface{}, limit uint64) ([]*domain.Lead, error) {
	builder := squirrel.
		Select("l.external_id, l.ad_id, l.form_id, l.field_data, l.created_time, l.created_at").
		From(leadsTable).
		OrderBy("l.created_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}
	if limit > 0 {
		builder = builder.Limit(limit)
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

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead := &domain.Lead{}
		var fieldDataJSON []byte

		err := rows.Scan(
			&lead.ExternalID,
			&lead.AdID,
			&lead.FormID,
			&fieldDataJSON,
			&lead.CreatedTime,
			&lead.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}

		if fieldDataJSON != nil {
			if err := json.Unmarshal(fieldDataJSON, &lead.FieldData); err != nil {
				return nil, fmt.Errorf("erro ao deserializar field_data: %w", err)
			}
		}

		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

// SaveBatch insere os leads de um anúncio em uma única transação. Leads já
// conhecidos são atualizados pelo external_id.
func (r *leadRepository) SaveBatch(ctx context.Context, leads []*domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, lead := range leads {
			fieldDataJSON, err := json.Marshal(lead.FieldData)
			if err != nil {
				return fmt.Errorf("erro ao serializar field_data: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("leads").
				Columns("external_id", "ad_id", "form_id", "field_data", "created_time").
				Values(lead.ExternalID, lead.AdID, lead.FormID, fieldDataJSON, lead.CreatedTime).
				Suffix(`
					ON CONFLICT (external_id) DO UPDATE SET
						ad_id = EXCLUDED.ad_id,
						form_id = EXCLUDED.form_id,
						field_data = EXCLUDED.field_data
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir lead %s: %w", lead.ExternalID, err)
			}
		}

		return nil
	})
}
