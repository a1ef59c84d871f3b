package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de la bitácora.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta una entrada. Changes se guarda como JSONB.
func (r *AuditLogRepo) Create(ctx context.Context, e *entity.AuditEntry) error {
	changes, err := json.Marshal(e.Changes)
	if err != nil {
		return fmt.Errorf("encode audit changes: %w", err)
	}
	query := `
		INSERT INTO audit_log (id, action, entity_type, entity_id, user_id, timestamp, changes, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		e.ID, string(e.Action), string(e.EntityType), e.EntityID, e.UserID, e.Timestamp, changes, e.Description,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve la página pedida ordenada por timestamp descendente y el total filtrado.
func (r *AuditLogRepo) List(ctx context.Context, filter repository.AuditFilter) ([]*entity.AuditEntry, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.EntityType != "" {
		args = append(args, filter.EntityType)
		conds = append(conds, fmt.Sprintf("entity_type = $%d", len(args)))
	}
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		conds = append(conds, fmt.Sprintf("entity_id = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = ` WHERE ` + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, action, entity_type, entity_id, user_id, timestamp, changes, description
		FROM audit_log%s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	list := []*entity.AuditEntry{}
	for rows.Next() {
		var (
			e                  entity.AuditEntry
			action, entityType string
			changes            []byte
		)
		if err := rows.Scan(&e.ID, &action, &entityType, &e.EntityID, &e.UserID, &e.Timestamp, &changes, &e.Description); err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Action = entity.AuditAction(action)
		e.EntityType = entity.AuditEntityType(entityType)
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &e.Changes); err != nil {
				return nil, 0, fmt.Errorf("decode audit changes: %w", err)
			}
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}
