package repository

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// AuditFilter filtros y paginación de la bitácora.
type AuditFilter struct {
	EntityType string
	EntityID   string
	Limit      int
	Offset     int
}

// AuditLogRepository define el puerto de persistencia de la bitácora de auditoría.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditEntry) error
	// List devuelve la página pedida (timestamp descendente) y el total que cumple el filtro.
	List(ctx context.Context, filter AuditFilter) ([]*entity.AuditEntry, int, error)
}
