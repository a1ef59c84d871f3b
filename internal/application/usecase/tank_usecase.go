package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// ResetDescription descripción de auditoría de un reset desde medición.
const ResetDescription = "Tank values reset from PDF measurement"

// TankUseCase casos de uso CRUD y reset de tanques.
type TankUseCase struct {
	repo    repository.TankRepository
	auditor Auditor
	now     func() time.Time
}

// NewTankUseCase construye el caso de uso.
func NewTankUseCase(repo repository.TankRepository, auditor Auditor) *TankUseCase {
	return &TankUseCase{repo: repo, auditor: auditor, now: time.Now}
}

// Create crea un tanque. El nombre es obligatorio y único sin distinguir mayúsculas.
func (uc *TankUseCase) Create(ctx context.Context, userID string, in dto.CreateTankRequest) (*dto.TankResponse, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	if in.CurrentVolume.IsNegative() {
		verr.Add("current_volume", "no puede ser negativo")
	}
	dto.ValidatePropertyValues("properties", in.Properties, verr)
	if verr.HasErrors() {
		return nil, verr
	}
	if err := uc.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	product := strings.TrimSpace(in.Product)
	if product == "" {
		product = entity.DefaultProduct
	}
	now := uc.now()
	tank := &entity.Tank{
		ID:            uuid.New().String(),
		Name:          name,
		Product:       product,
		Location:      strings.TrimSpace(in.Location),
		CurrentVolume: in.CurrentVolume,
		Properties:    dto.ToPropertyValues(in.Properties),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, tank); err != nil {
		return nil, err
	}
	resp := dto.NewTankResponse(tank)
	uc.auditor.Record(ctx, entity.AuditActionCreate, entity.AuditEntityTank, tank.ID, userID, nil, resp, "")
	return &resp, nil
}

// GetByID obtiene un tanque.
func (uc *TankUseCase) GetByID(ctx context.Context, id string) (*dto.TankResponse, error) {
	tank, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTankResponse(tank)
	return &resp, nil
}

// List lista los tanques.
func (uc *TankUseCase) List(ctx context.Context) (*dto.TankListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TankResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.NewTankResponse(t))
	}
	return &dto.TankListResponse{Items: items}, nil
}

// Update aplica un patch parcial.
func (uc *TankUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateTankRequest) (*dto.TankResponse, error) {
	tank, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := dto.NewTankResponse(tank)

	verr := &domain.ValidationError{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			verr.Add("name", "es obligatorio")
		}
		tank.Name = name
	}
	if in.CurrentVolume != nil {
		if in.CurrentVolume.IsNegative() {
			verr.Add("current_volume", "no puede ser negativo")
		}
		tank.CurrentVolume = *in.CurrentVolume
	}
	if in.Properties != nil {
		dto.ValidatePropertyValues("properties", *in.Properties, verr)
		tank.Properties = dto.ToPropertyValues(*in.Properties)
	}
	if verr.HasErrors() {
		return nil, verr
	}
	if in.Name != nil {
		if err := uc.ensureUniqueName(ctx, tank.Name, tank.ID); err != nil {
			return nil, err
		}
	}
	if in.Product != nil {
		tank.Product = strings.TrimSpace(*in.Product)
		if tank.Product == "" {
			tank.Product = entity.DefaultProduct
		}
	}
	if in.Location != nil {
		tank.Location = strings.TrimSpace(*in.Location)
	}
	tank.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, tank); err != nil {
		return nil, err
	}
	resp := dto.NewTankResponse(tank)
	uc.auditor.Record(ctx, entity.AuditActionUpdate, entity.AuditEntityTank, tank.ID, userID, old, resp, "")
	return &resp, nil
}

// Reset reemplaza volumen y propiedades con los valores de una medición.
func (uc *TankUseCase) Reset(ctx context.Context, userID, id string, in dto.ResetTankRequest) (*dto.TankResponse, error) {
	verr := &domain.ValidationError{}
	if in.CurrentVolume.IsNegative() {
		verr.Add("current_volume", "no puede ser negativo")
	}
	dto.ValidatePropertyValues("properties", in.Properties, verr)
	if verr.HasErrors() {
		return nil, verr
	}

	tank, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := dto.NewTankResponse(tank)
	tank.CurrentVolume = in.CurrentVolume
	tank.Properties = dto.ToPropertyValues(in.Properties)
	tank.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, tank); err != nil {
		return nil, err
	}
	resp := dto.NewTankResponse(tank)
	uc.auditor.Record(ctx, entity.AuditActionReset, entity.AuditEntityTank, tank.ID, userID, old, resp, ResetDescription)
	return &resp, nil
}

func (uc *TankUseCase) get(ctx context.Context, id string) (*entity.Tank, error) {
	tank, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.ErrNotFound
	}
	return tank, nil
}

// ensureUniqueName falla con ErrDuplicate si otro tanque (distinto de selfID) ya usa el nombre.
func (uc *TankUseCase) ensureUniqueName(ctx context.Context, name, selfID string) error {
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un tanque llamado %q", domain.ErrDuplicate, existing.Name)
	}
	return nil
}

