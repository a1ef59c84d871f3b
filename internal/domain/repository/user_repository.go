package repository

import (
	"context"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// UserRepository catálogo de usuarios (solo lectura).
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
}
