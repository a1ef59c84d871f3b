package repository

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// MovementFilter filtros de listado de movimientos.
type MovementFilter struct {
	TankID      string // origen o destino
	PendingOnly bool   // solo programados (date IS NULL)
}

// MovementRepository define el puerto de persistencia para movimientos.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	Delete(ctx context.Context, id string) error
	// List devuelve los movimientos ordenados por scheduled_date descendente.
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
