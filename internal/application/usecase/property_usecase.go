package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// PropertyUseCase CRUD del catálogo de propiedades medibles.
type PropertyUseCase struct {
	repo    repository.PropertyRepository
	auditor Auditor
	now     func() time.Time
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(repo repository.PropertyRepository, auditor Auditor) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, auditor: auditor, now: time.Now}
}

// Create agrega una propiedad. El repositorio devuelve ErrDuplicate si el nombre ya existe.
func (uc *PropertyUseCase) Create(ctx context.Context, userID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	p := &entity.PropertyDefinition{
		ID:        uuid.New().String(),
		Name:      name,
		Unit:      strings.TrimSpace(in.Unit),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	uc.auditor.Record(ctx, entity.AuditActionCreate, entity.AuditEntityProperty, p.ID, userID, nil, resp, "")
	return &resp, nil
}

// List devuelve el catálogo.
func (uc *PropertyUseCase) List(ctx context.Context) (*dto.PropertyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.NewPropertyResponse(p))
	}
	return &dto.PropertyListResponse{Items: items}, nil
}

// Update cambia nombre y/o unidad.
func (uc *PropertyUseCase) Update(ctx context.Context, userID, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	old := dto.NewPropertyResponse(p)
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "es obligatorio")
		}
		p.Name = name
	}
	if in.Unit != nil {
		p.Unit = strings.TrimSpace(*in.Unit)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	uc.auditor.Record(ctx, entity.AuditActionUpdate, entity.AuditEntityProperty, p.ID, userID, old, resp, "")
	return &resp, nil
}

// Delete elimina una propiedad del catálogo.
func (uc *PropertyUseCase) Delete(ctx context.Context, userID, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditor.Record(ctx, entity.AuditActionDelete, entity.AuditEntityProperty, id, userID, dto.NewPropertyResponse(p), nil, "")
	return nil
}
