package inventory

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/inventory"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// Horizonte de la gráfica de nivel, en días.
const (
	DefaultHorizonDays = 30
	MaxHorizonDays     = 365
)

// ProjectionUseCase consultas de estado proyectado (solo lectura).
type ProjectionUseCase struct {
	tankRepo repository.TankRepository
	movRepo  repository.MovementRepository
	now      func() time.Time
}

// NewProjectionUseCase construye el caso de uso.
func NewProjectionUseCase(tankRepo repository.TankRepository, movRepo repository.MovementRepository) *ProjectionUseCase {
	return &ProjectionUseCase{tankRepo: tankRepo, movRepo: movRepo, now: time.Now}
}

// ProjectTank devuelve el estado actual y el proyectado de un tanque junto con sus
// movimientos pendientes (en orden de ejecución) y el cambio que cada uno produce.
func (uc *ProjectionUseCase) ProjectTank(ctx context.Context, tankID string) (*dto.ProjectionResponse, error) {
	tank, pending, err := uc.load(ctx, tankID)
	if err != nil {
		return nil, err
	}
	projected := inventory.Project(*tank, pending)

	items := make([]dto.MovementResponse, 0, len(pending))
	for i := range pending {
		items = append(items, dto.NewMovementResponseFor(&pending[i], tank.ID))
	}

	return &dto.ProjectionResponse{
		TankID:              tank.ID,
		TankName:            tank.Name,
		CurrentVolume:       tank.CurrentVolume,
		ProjectedVolume:     projected.Volume,
		VolumeDelta:         projected.Volume.Sub(tank.CurrentVolume),
		CurrentProperties:   dto.FromPropertyValues(tank.Properties),
		ProjectedProperties: dto.FromPropertyValues(projected.Properties),
		PendingMovements:    items,
	}, nil
}

// ProjectAll lista los tanques con su volumen proyectado. Cada tanque se proyecta en
// su propia goroutine; el resultado conserva el orden del listado.
func (uc *ProjectionUseCase) ProjectAll(ctx context.Context) (*dto.TankListResponse, error) {
	tanks, err := uc.tankRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := uc.movRepo.List(ctx, repository.MovementFilter{PendingOnly: true})
	if err != nil {
		return nil, err
	}
	movements := chronological(pending)

	items := make([]dto.TankResponse, len(tanks))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tanks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := inventory.Project(*t, inventory.PendingFor(t.ID, movements))
			resp := dto.NewTankResponse(t)
			resp.ProjectedVolume = &p.Volume
			items[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.TankListResponse{Items: items}, nil
}

// Timeline serie de nivel del tanque desde hoy hasta horizonDays (30 por defecto, máximo 365).
func (uc *ProjectionUseCase) Timeline(ctx context.Context, tankID string, horizonDays int) (*dto.TimelineResponse, error) {
	if horizonDays == 0 {
		horizonDays = DefaultHorizonDays
	}
	if horizonDays < 0 || horizonDays > MaxHorizonDays {
		return nil, domain.NewValidationError("horizon_days", "debe estar entre 1 y 365")
	}
	tank, pending, err := uc.load(ctx, tankID)
	if err != nil {
		return nil, err
	}
	points := inventory.Timeline(*tank, pending, uc.now(), horizonDays)
	out := make([]dto.TimelinePointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TimelinePointDTO{
			Date:       p.Date,
			Volume:     p.Volume,
			Change:     p.Change,
			MovementID: p.MovementID,
			Projected:  p.Projected,
		})
	}
	return &dto.TimelineResponse{TankID: tank.ID, HorizonDays: horizonDays, Points: out}, nil
}

// load obtiene el tanque y sus movimientos pendientes en orden cronológico.
func (uc *ProjectionUseCase) load(ctx context.Context, tankID string) (*entity.Tank, []entity.Movement, error) {
	tank, err := uc.tankRepo.GetByID(ctx, tankID)
	if err != nil {
		return nil, nil, err
	}
	if tank == nil {
		return nil, nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.List(ctx, repository.MovementFilter{TankID: tankID, PendingOnly: true})
	if err != nil {
		return nil, nil, err
	}
	return tank, inventory.PendingFor(tank.ID, chronological(list)), nil
}

// chronological copia el listado del repositorio (más reciente primero) invirtiendo el
// orden. ProjectTank y ProjectAll deben recibir la misma secuencia para coincidir.
func chronological(list []*entity.Movement) []entity.Movement {
	out := make([]entity.Movement, len(list))
	for i, m := range list {
		out[len(list)-1-i] = *m
	}
	return out
}
