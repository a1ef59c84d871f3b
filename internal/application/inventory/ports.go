package inventory

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que un movimiento completado y su efecto sobre los tanques se guarden juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tankRepo repository.TankRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// Auditor registra cambios en la bitácora. No devuelve error: un fallo de auditoría
// nunca hace fallar la operación principal.
type Auditor interface {
	Record(ctx context.Context, action entity.AuditAction, entityType entity.AuditEntityType,
		entityID, userID string, old, new any, description string)
}
