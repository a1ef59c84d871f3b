package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/inventory"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// MovementUseCase ciclo de vida de los movimientos: alta, edición, baja y consultas.
// Un movimiento que se registra (o pasa a) completado se asienta en los tanques dentro
// de la misma transacción, con las filas de los tanques bloqueadas (SELECT FOR UPDATE).
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	auditor  Auditor
	now      func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, auditor Auditor) *MovementUseCase {
	return &MovementUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		auditor:  auditor,
		now:      time.Now,
	}
}

// Create registra un movimiento programado o completado (si trae date).
func (uc *MovementUseCase) Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	verr := &domain.ValidationError{}
	flow, err := entity.NewFlow(entity.MovementType(in.Type), in.SourceTankID, in.DestinationTankID)
	if err != nil {
		mergeValidation(verr, err)
	}
	validateVolumes(in.ExpectedVolume, in.ActualVolume, verr)
	dto.ValidatePropertyValues("properties", in.Properties, verr)
	if verr.HasErrors() {
		return nil, verr
	}

	now := uc.now()
	m := &entity.Movement{
		ID:             uuid.New().String(),
		Flow:           flow,
		Date:           in.Date,
		ScheduledDate:  now,
		ExpectedVolume: in.ExpectedVolume,
		Properties:     dto.ToPropertyValues(in.Properties),
		Carrier:        in.Carrier,
		TicketNumber:   in.TicketNumber,
		Notes:          in.Notes,
		PDFPath:        in.PDFPath,
		CreatedAt:      now,
		CreatedBy:      userOrSystem(userID),
	}
	if in.ScheduledDate != nil {
		m.ScheduledDate = *in.ScheduledDate
	}
	if in.ActualVolume != nil {
		m.ActualVolume = decimal.NewNullDecimal(*in.ActualVolume)
	}

	err = uc.txRunner.Run(ctx, func(tankRepo repository.TankRepository, movRepo repository.MovementRepository) error {
		source, destination, err := lockTanks(ctx, tankRepo, m.Flow)
		if err != nil {
			return err
		}
		if m.IsCompleted() {
			if err := checkCapacity(source, *m); err != nil {
				return err
			}
			if err := settle(ctx, tankRepo, *m, source, destination, now); err != nil {
				return err
			}
		}
		return movRepo.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewMovementResponse(m)
	uc.auditor.Record(ctx, entity.AuditActionCreate, entity.AuditEntityMovement, m.ID, m.CreatedBy, nil, resp, "")
	return &resp, nil
}

// Update aplica un patch parcial. Si el movimiento pasa de programado a completado se asienta
// en los tanques. Un movimiento ya completado solo admite cambios de datos descriptivos.
func (uc *MovementUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	var old, updated dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(tankRepo repository.TankRepository, movRepo repository.MovementRepository) error {
		current, err := movRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.IsCompleted() && touchesSettlement(in) {
			return fmt.Errorf("%w: el movimiento ya está completado", domain.ErrConflict)
		}

		next, err := applyPatch(*current, in)
		if err != nil {
			return err
		}
		source, destination, err := lockTanks(ctx, tankRepo, next.Flow)
		if err != nil {
			return err
		}
		if !current.IsCompleted() && next.IsCompleted() {
			if err := settle(ctx, tankRepo, next, source, destination, uc.now()); err != nil {
				return err
			}
		}
		if err := movRepo.Update(ctx, &next); err != nil {
			return err
		}
		old = dto.NewMovementResponse(current)
		updated = dto.NewMovementResponse(&next)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(ctx, entity.AuditActionUpdate, entity.AuditEntityMovement, id, userOrSystem(userID), old, updated, "")
	return &updated, nil
}

// Delete elimina un movimiento. Un movimiento completado no se revierte sobre los tanques.
func (uc *MovementUseCase) Delete(ctx context.Context, userID, id string) error {
	current, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if err := uc.movRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditor.Record(ctx, entity.AuditActionDelete, entity.AuditEntityMovement, id, userOrSystem(userID),
		dto.NewMovementResponse(current), nil, "")
	return nil
}

// GetByID obtiene un movimiento.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewMovementResponse(m)
	return &resp, nil
}

// List lista movimientos (programación más reciente primero). Con tankID filtra por tanque
// e informa el cambio de volumen de cada movimiento sobre ese tanque.
func (uc *MovementUseCase) List(ctx context.Context, tankID string) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(ctx, repository.MovementFilter{TankID: tankID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		if tankID != "" {
			items = append(items, dto.NewMovementResponseFor(m, tankID))
			continue
		}
		items = append(items, dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

// lockTanks bloquea los tanques del flujo en orden de ID (evita deadlocks entre transacciones)
// y valida que existan.
func lockTanks(ctx context.Context, tankRepo repository.TankRepository, flow entity.Flow) (source, destination *entity.Tank, err error) {
	m := entity.Movement{Flow: flow}
	fields := map[string]string{}
	if id := m.SourceTankID(); id != "" {
		fields[id] = "source_tank_id"
	}
	if id := m.DestinationTankID(); id != "" {
		fields[id] = "destination_tank_id"
	}
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	verr := &domain.ValidationError{}
	locked := make(map[string]*entity.Tank, len(ids))
	for _, id := range ids {
		t, err := tankRepo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if t == nil {
			verr.Add(fields[id], "el tanque no existe")
			continue
		}
		locked[id] = t
	}
	if verr.HasErrors() {
		return nil, nil, verr
	}
	return locked[m.SourceTankID()], locked[m.DestinationTankID()], nil
}

// checkCapacity exige volumen suficiente en el origen. Solo aplica al registrar un
// movimiento ya completado; al completar uno programado el volumen se detiene en cero.
func checkCapacity(source *entity.Tank, m entity.Movement) error {
	if source != nil && source.CurrentVolume.LessThan(m.EffectiveVolume()) {
		return domain.NewValidationError("source_tank_id",
			fmt.Sprintf("volumen insuficiente en el tanque origen (disponible %s)", source.CurrentVolume.String()))
	}
	return nil
}

// settle asienta el movimiento y guarda los tanques tocados.
func settle(ctx context.Context, tankRepo repository.TankRepository, m entity.Movement, source, destination *entity.Tank, now time.Time) error {
	inventory.Settle(m, source, destination, now)
	for _, t := range []*entity.Tank{source, destination} {
		if t == nil {
			continue
		}
		if err := tankRepo.Update(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func applyPatch(m entity.Movement, in dto.UpdateMovementRequest) (entity.Movement, error) {
	verr := &domain.ValidationError{}

	if in.Type != nil || in.SourceTankID != nil || in.DestinationTankID != nil {
		t, src, dst := m.Type(), m.SourceTankID(), m.DestinationTankID()
		if in.Type != nil {
			t = entity.MovementType(*in.Type)
		}
		if in.SourceTankID != nil {
			src = *in.SourceTankID
		}
		if in.DestinationTankID != nil {
			dst = *in.DestinationTankID
		}
		// Al cambiar de tipo se descarta el tanque que la nueva variante no usa.
		switch t {
		case entity.MovementTypeReceive:
			src = ""
		case entity.MovementTypeShip:
			dst = ""
		}
		flow, err := entity.NewFlow(t, src, dst)
		if err != nil {
			mergeValidation(verr, err)
		} else {
			m.Flow = flow
		}
	}
	if in.ExpectedVolume != nil {
		m.ExpectedVolume = *in.ExpectedVolume
	}
	if in.ActualVolume != nil {
		m.ActualVolume = decimal.NewNullDecimal(*in.ActualVolume)
	}
	var actual *decimal.Decimal
	if m.ActualVolume.Valid {
		actual = &m.ActualVolume.Decimal
	}
	validateVolumes(m.ExpectedVolume, actual, verr)

	if in.Properties != nil {
		dto.ValidatePropertyValues("properties", *in.Properties, verr)
		m.Properties = dto.ToPropertyValues(*in.Properties)
	} else {
		m.Properties = entity.CloneProperties(m.Properties)
	}
	if verr.HasErrors() {
		return m, verr
	}

	if in.Date != nil {
		m.Date = in.Date
	}
	if in.ScheduledDate != nil {
		m.ScheduledDate = *in.ScheduledDate
	}
	if in.Carrier != nil {
		m.Carrier = *in.Carrier
	}
	if in.TicketNumber != nil {
		m.TicketNumber = *in.TicketNumber
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	if in.PDFPath != nil {
		m.PDFPath = *in.PDFPath
	}
	return m, nil
}

// touchesSettlement indica si el patch cambia algo que ya se asentó en los tanques.
func touchesSettlement(in dto.UpdateMovementRequest) bool {
	return in.Type != nil || in.SourceTankID != nil || in.DestinationTankID != nil ||
		in.Date != nil || in.ExpectedVolume != nil || in.ActualVolume != nil || in.Properties != nil
}

func validateVolumes(expected decimal.Decimal, actual *decimal.Decimal, verr *domain.ValidationError) {
	if !expected.IsPositive() {
		verr.Add("expected_volume", "debe ser mayor que cero")
	}
	if actual != nil && !actual.IsPositive() {
		verr.Add("actual_volume", "debe ser mayor que cero")
	}
}

func mergeValidation(dst *domain.ValidationError, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		dst.Details = append(dst.Details, verr.Details...)
		return
	}
	dst.Add("type", err.Error())
}

func userOrSystem(userID string) string {
	if userID == "" {
		return entity.SystemUserID
	}
	return userID
}
