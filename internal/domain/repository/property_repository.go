package repository

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// PropertyRepository define el puerto de persistencia del catálogo de propiedades.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.PropertyDefinition) error
	GetByID(ctx context.Context, id string) (*entity.PropertyDefinition, error)
	List(ctx context.Context) ([]*entity.PropertyDefinition, error)
	Update(ctx context.Context, property *entity.PropertyDefinition) error
	Delete(ctx context.Context, id string) error
}
