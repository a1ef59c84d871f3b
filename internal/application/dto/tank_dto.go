package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTankRequest body para POST /api/tanks.
type CreateTankRequest struct {
	Name          string             `json:"name"`
	Product       string             `json:"product,omitempty"`
	Location      string             `json:"location,omitempty"`
	CurrentVolume decimal.Decimal    `json:"current_volume"`
	Properties    []PropertyValueDTO `json:"properties,omitempty"`
}

// UpdateTankRequest body para PATCH /api/tanks/:id. Solo se aplican los campos presentes.
type UpdateTankRequest struct {
	Name          *string             `json:"name,omitempty"`
	Product       *string             `json:"product,omitempty"`
	Location      *string             `json:"location,omitempty"`
	CurrentVolume *decimal.Decimal    `json:"current_volume,omitempty"`
	Properties    *[]PropertyValueDTO `json:"properties,omitempty"`
}

// ResetTankRequest body para POST /api/tanks/:id/reset (valores leídos de una medición).
type ResetTankRequest struct {
	CurrentVolume decimal.Decimal    `json:"current_volume"`
	Properties    []PropertyValueDTO `json:"properties"`
}

// TankResponse respuesta de un tanque.
type TankResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Product         string             `json:"product"`
	Location        string             `json:"location"`
	CurrentVolume   decimal.Decimal    `json:"current_volume"`
	Properties      []PropertyValueDTO `json:"properties"`
	ProjectedVolume *decimal.Decimal   `json:"projected_volume,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TankListResponse listado de tanques.
type TankListResponse struct {
	Items []TankResponse `json:"items"`
}

// ProjectionResponse estado actual y proyectado de un tanque con sus movimientos pendientes.
type ProjectionResponse struct {
	TankID              string             `json:"tank_id"`
	TankName            string             `json:"tank_name"`
	CurrentVolume       decimal.Decimal    `json:"current_volume"`
	ProjectedVolume     decimal.Decimal    `json:"projected_volume"`
	VolumeDelta         decimal.Decimal    `json:"volume_delta"`
	CurrentProperties   []PropertyValueDTO `json:"current_properties"`
	ProjectedProperties []PropertyValueDTO `json:"projected_properties"`
	PendingMovements    []MovementResponse `json:"pending_movements"`
}

// TimelinePointDTO punto de la gráfica de nivel.
type TimelinePointDTO struct {
	Date       time.Time       `json:"date"`
	Volume     decimal.Decimal `json:"volume"`
	Change     decimal.Decimal `json:"change"`
	MovementID string          `json:"movement_id,omitempty"`
	Projected  bool            `json:"projected"`
}

// TimelineResponse serie de nivel de un tanque.
type TimelineResponse struct {
	TankID      string             `json:"tank_id"`
	HorizonDays int                `json:"horizon_days"`
	Points      []TimelinePointDTO `json:"points"`
}
