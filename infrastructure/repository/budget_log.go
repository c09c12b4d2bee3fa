package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	budgetLogsTable   = "budget_adjustment_logs bl"
	budgetLogsColumns = "bl.id, bl.adset_id, bl.budget_type, bl.old_budget, bl.new_budget, bl.adjustment_amount, bl.adjustment_percent, bl.trigger_type, bl.reason, bl.status, bl.upstream_response, bl.error_message, bl.created_at, bl.applied_at"
)

// BudgetLogRepository é o armazenamento append-only dos registros de ajuste.
// A engine de orçamento reavalia a janela móvel de ajustes aplicados contra
// este repositório a cada solicitação; nada é cacheado.
type BudgetLogRepository interface {
	Create(log *domain.BudgetAdjustmentLog) error
	GetByID(id string) (*domain.BudgetAdjustmentLog, error)
	SetStatus(id string, status domain.AdjustmentStatus, upstreamResponse []byte, errorMessage *string) error
	CountAppliedSince(adsetID string, since time.Time) (int, error)
	LastAppliedAt(adsetID string) (*time.Time, error)
	ListByAdSet(adsetID string, limit uint64) ([]*domain.BudgetAdjustmentLog, error)
	ListPendingOlderThan(age time.Duration) ([]*domain.BudgetAdjustmentLog, error)
}

type budgetLogRepository struct {
	conn *postgres.Connection
}

func NewBudgetLogRepository(conn *postgres.Connection) BudgetLogRepository {
	return &budgetLogRepository{
		conn: conn,
	}
}

func (r *budgetLogRepository) Create(log *domain.BudgetAdjustmentLog) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("budget_adjustment_logs").
		Columns("id", "adset_id", "budget_type", "old_budget", "new_budget", "adjustment_amount", "adjustment_percent", "trigger_type", "reason", "status", "error_message").
		Values(
			log.ID,
			log.AdSetID,
			log.BudgetType,
			log.OldBudget,
			log.NewBudget,
			log.AdjustmentAmount,
			log.AdjustmentPercent,
			log.TriggerType,
			log.Reason,
			log.Status,
			log.ErrorMessage,
		).
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

func (r *budgetLogRepository) GetByID(id string) (*domain.BudgetAdjustmentLog, error) {
	query, args, err := squirrel.
		Select(budgetLogsColumns).
		From(budgetLogsTable).
		Where(squirrel.Eq{"bl.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	log, err := r.scanLog(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de ajuste: %w", err)
	}

	return log, nil
}

// SetStatus atualiza o registro para seu estado terminal exatamente uma vez.
// applied_at só é preenchido na transição para applied.
func (r *budgetLogRepository) SetStatus(id string, status domain.AdjustmentStatus, upstreamResponse []byte, errorMessage *string) error {
	builder := squirrel.
		Update("budget_adjustment_logs").
		Set("status", status).
		Set("error_message", errorMessage).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if upstreamResponse != nil {
		builder = builder.Set("upstream_response", upstreamResponse)
	}
	if status == domain.AdjustmentApplied {
		builder = builder.Set("applied_at", squirrel.Expr("NOW()"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("registro de ajuste não encontrado: %s", id)
	}

	return nil
}

// CountAppliedSince conta os ajustes aplicados ao conjunto dentro da janela
// móvel. Avaliado no momento da solicitação, nunca cacheado.
func (r *budgetLogRepository) CountAppliedSince(adsetID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(budgetLogsTable).
		Where(squirrel.Eq{"bl.adset_id": adsetID, "bl.status": domain.AdjustmentApplied}).
		Where(squirrel.GtOrEq{"bl.applied_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar ajustes aplicados: %w", err)
	}

	return count, nil
}

func (r *budgetLogRepository) LastAppliedAt(adsetID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(bl.applied_at)").
		From(budgetLogsTable).
		Where(squirrel.Eq{"bl.adset_id": adsetID, "bl.status": domain.AdjustmentApplied}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var last sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("erro ao buscar último ajuste aplicado: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}

func (r *budgetLogRepository) ListByAdSet(adsetID string, limit uint64) ([]*domain.BudgetAdjustmentLog, error) {
	query, args, err := squirrel.
		Select(budgetLogsColumns).
		From(budgetLogsTable).
		Where(squirrel.Eq{"bl.adset_id": adsetID}).
		OrderBy("bl.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args)
}

// ListPendingOlderThan retorna registros presos em pending há mais tempo que
// a carência informada: candidatos da varredura de reconciliação.
func (r *budgetLogRepository) ListPendingOlderThan(age time.Duration) ([]*domain.BudgetAdjustmentLog, error) {
	cutoff := time.Now().Add(-age)

	query, args, err := squirrel.
		Select(budgetLogsColumns).
		From(budgetLogsTable).
		Where(squirrel.Eq{"bl.status": domain.AdjustmentPending}).
		Where(squirrel.Lt{"bl.created_at": cutoff}).
		OrderBy("bl.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args)
}

func (r *budgetLogRepository) queryLogs(query string, args []interface{}) ([]*domain.BudgetAdjustmentLog, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.BudgetAdjustmentLog, 0)
	for rows.Next() {
		log, err := r.scanLogRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de ajuste: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func (r *budgetLogRepository) scanLog(row *sql.Row) (*domain.BudgetAdjustmentLog, error) {
	log := &domain.BudgetAdjustmentLog{}
	var upstreamResponse []byte
	var appliedAt sql.NullTime

	err := row.Scan(
		&log.ID,
		&log.AdSetID,
		&log.BudgetType,
		&log.OldBudget,
		&log.NewBudget,
		&log.AdjustmentAmount,
		&log.AdjustmentPercent,
		&log.TriggerType,
		&log.Reason,
		&log.Status,
		&upstreamResponse,
		&log.ErrorMessage,
		&log.CreatedAt,
		&appliedAt,
	)
	if err != nil {
		return nil, err
	}

	log.UpstreamResponse = upstreamResponse
	if appliedAt.Valid {
		log.AppliedAt = &appliedAt.Time
	}

	return log, nil
}

func (r *budgetLogRepository) scanLogRows(rows *sql.Rows) (*domain.BudgetAdjustmentLog, error) {
	log := &domain.BudgetAdjustmentLog{}
	var upstreamResponse []byte
	var appliedAt sql.NullTime

	err := rows.Scan(
		&log.ID,
		&log.AdSetID,
		&log.BudgetType,
		&log.OldBudget,
		&log.NewBudget,
		&log.AdjustmentAmount,
		&log.AdjustmentPercent,
		&log.TriggerType,
		&log.Reason,
		&log.Status,
		&upstreamResponse,
		&log.ErrorMessage,
		&log.CreatedAt,
		&appliedAt,
	)
	if err != nil {
		return nil, err
	}

	log.UpstreamResponse = upstreamResponse
	if appliedAt.Valid {
		log.AppliedAt = &appliedAt.Time
	}

	return log, nil
}
