package repository

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// TankRepository define el puerto de persistencia para tanques.
// GetByID y GetForUpdate devuelven (nil, nil) si el tanque no existe.
type TankRepository interface {
	Create(ctx context.Context, tank *entity.Tank) error
	GetByID(ctx context.Context, id string) (*entity.Tank, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Tank, error)
	GetByName(ctx context.Context, name string) (*entity.Tank, error)
	List(ctx context.Context) ([]*entity.Tank, error)
	Update(ctx context.Context, tank *entity.Tank) error
}
