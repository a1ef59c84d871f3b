package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un movimiento en las respuestas.
const (
	MovementStatusPending   = "pending"
	MovementStatusCompleted = "completed"
)

// CreateMovementRequest body para POST /api/movements.
// receive: destination_tank_id; ship: source_tank_id; transfer: ambos (distintos).
// Si date viene informado el movimiento se registra como completado.
type CreateMovementRequest struct {
	Type              string             `json:"type"`
	SourceTankID      string             `json:"source_tank_id,omitempty"`
	DestinationTankID string             `json:"destination_tank_id,omitempty"`
	Date              *time.Time         `json:"date,omitempty"`
	ScheduledDate     *time.Time         `json:"scheduled_date,omitempty"`
	ExpectedVolume    decimal.Decimal    `json:"expected_volume"`
	ActualVolume      *decimal.Decimal   `json:"actual_volume,omitempty"`
	Properties        []PropertyValueDTO `json:"properties,omitempty"`
	Carrier           string             `json:"carrier,omitempty"`
	TicketNumber      string             `json:"ticket_number,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	PDFPath           string             `json:"pdf_path,omitempty"`
}

// UpdateMovementRequest body para PATCH /api/movements/:id. Solo se aplican los campos presentes.
type UpdateMovementRequest struct {
	Type              *string             `json:"type,omitempty"`
	SourceTankID      *string             `json:"source_tank_id,omitempty"`
	DestinationTankID *string             `json:"destination_tank_id,omitempty"`
	Date              *time.Time          `json:"date,omitempty"`
	ScheduledDate     *time.Time          `json:"scheduled_date,omitempty"`
	ExpectedVolume    *decimal.Decimal    `json:"expected_volume,omitempty"`
	ActualVolume      *decimal.Decimal    `json:"actual_volume,omitempty"`
	Properties        *[]PropertyValueDTO `json:"properties,omitempty"`
	Carrier           *string             `json:"carrier,omitempty"`
	TicketNumber      *string             `json:"ticket_number,omitempty"`
	Notes             *string             `json:"notes,omitempty"`
	PDFPath           *string             `json:"pdf_path,omitempty"`
}

// MovementResponse respuesta de un movimiento. VolumeChange solo se informa cuando
// el listado se pide para un tanque concreto.
type MovementResponse struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	Status            string             `json:"status"`
	SourceTankID      string             `json:"source_tank_id,omitempty"`
	DestinationTankID string             `json:"destination_tank_id,omitempty"`
	Date              *time.Time         `json:"date,omitempty"`
	ScheduledDate     time.Time          `json:"scheduled_date"`
	ExpectedVolume    decimal.Decimal    `json:"expected_volume"`
	ActualVolume      *decimal.Decimal   `json:"actual_volume,omitempty"`
	EffectiveVolume   decimal.Decimal    `json:"effective_volume"`
	VolumeChange      *decimal.Decimal   `json:"volume_change,omitempty"`
	Properties        []PropertyValueDTO `json:"properties"`
	Carrier           string             `json:"carrier,omitempty"`
	TicketNumber      string             `json:"ticket_number,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	PDFPath           string             `json:"pdf_path,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	CreatedBy         string             `json:"created_by"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
