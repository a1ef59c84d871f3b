package dto

import (
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/inventory"
)

// NewTankResponse mapea un tanque a su respuesta.
func NewTankResponse(t *entity.Tank) TankResponse {
	return TankResponse{
		ID:            t.ID,
		Name:          t.Name,
		Product:       t.Product,
		Location:      t.Location,
		CurrentVolume: t.CurrentVolume,
		Properties:    FromPropertyValues(t.Properties),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// NewMovementResponse mapea un movimiento a su respuesta.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	status := MovementStatusPending
	if m.IsCompleted() {
		status = MovementStatusCompleted
	}
	resp := MovementResponse{
		ID:                m.ID,
		Type:              string(m.Type()),
		Status:            status,
		SourceTankID:      m.SourceTankID(),
		DestinationTankID: m.DestinationTankID(),
		Date:              m.Date,
		ScheduledDate:     m.ScheduledDate,
		ExpectedVolume:    m.ExpectedVolume,
		EffectiveVolume:   m.EffectiveVolume(),
		Properties:        FromPropertyValues(m.Properties),
		Carrier:           m.Carrier,
		TicketNumber:      m.TicketNumber,
		Notes:             m.Notes,
		PDFPath:           m.PDFPath,
		CreatedAt:         m.CreatedAt,
		CreatedBy:         m.CreatedBy,
	}
	if m.ActualVolume.Valid {
		v := m.ActualVolume.Decimal
		resp.ActualVolume = &v
	}
	return resp
}

// NewMovementResponseFor incluye el cambio de volumen que el movimiento produce en tankID.
func NewMovementResponseFor(m *entity.Movement, tankID string) MovementResponse {
	resp := NewMovementResponse(m)
	change := inventory.VolumeChange(*m, tankID)
	resp.VolumeChange = &change
	return resp
}

// NewPropertyResponse mapea una definición de propiedad.
func NewPropertyResponse(p *entity.PropertyDefinition) PropertyResponse {
	return PropertyResponse{ID: p.ID, Name: p.Name, Unit: p.Unit, CreatedAt: p.CreatedAt}
}

// NewAuditEntryResponse mapea una entrada de la bitácora.
func NewAuditEntryResponse(e *entity.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		Action:      string(e.Action),
		EntityType:  string(e.EntityType),
		EntityID:    e.EntityID,
		UserID:      e.UserID,
		Timestamp:   e.Timestamp,
		Changes:     AuditChangesDTO{Old: e.Changes.Old, New: e.Changes.New},
		Description: e.Description,
	}
}
