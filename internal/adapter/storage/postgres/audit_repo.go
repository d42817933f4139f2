package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const auditInsert = `INSERT INTO audit_logs (id, admin_id, action, target_account_id, details, ip_address, timestamp)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create writes an audit log outside any transaction.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	return insertAudit(ctx, r.pool, log)
}

// CreateTx writes an audit log inside tx.
func (r *AuditRepo) CreateTx(ctx context.Context, tx pgx.Tx, log *domain.AuditLog) error {
	return insertAudit(ctx, tx, log)
}

func insertAudit(ctx context.Context, q querier, log *domain.AuditLog) error {
	details, err := json.Marshal(log.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	_, err = q.Exec(ctx, auditInsert,
		log.ID, log.AdminID, log.Action, log.TargetAccountID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List fetches audit logs newest first with filtering and pagination.
func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, *params.Action)
		argIdx++
	}
	if params.TargetAccountID != nil {
		conditions = append(conditions, fmt.Sprintf("target_account_id = $%d", argIdx))
		args = append(args, *params.TargetAccountID)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	dataQuery := fmt.Sprintf(`SELECT id, admin_id, action, target_account_id, details, ip_address, timestamp
		FROM audit_logs %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset(params.Page, params.PageSize))

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		l := domain.AuditLog{}
		var details []byte
		if err := rows.Scan(&l.ID, &l.AdminID, &l.Action, &l.TargetAccountID, &details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan audit row: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &l.Details); err != nil {
				return nil, 0, fmt.Errorf("decode audit details: %w", err)
			}
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit rows: %w", err)
	}
	return logs, total, nil
}
