package entity

import (
	"time"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de producto.
type MovementType string

// Tipos de movimiento.
const (
	MovementTypeReceive  MovementType = "receive"  // entrada desde fuera de la terminal
	MovementTypeShip     MovementType = "ship"     // despacho hacia fuera de la terminal
	MovementTypeTransfer MovementType = "transfer" // traslado entre tanques
)

// Valid indica si el tipo es conocido.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeReceive, MovementTypeShip, MovementTypeTransfer:
		return true
	}
	return false
}

// Flow describe origen y destino de un movimiento. Solo existen tres variantes
// (Receive, Ship, Transfer), así no hay combinaciones inválidas de tanques nulos.
type Flow interface {
	Type() MovementType
	isFlow()
}

// Receive entrada al tanque destino.
type Receive struct {
	DestinationTankID string
}

// Ship salida desde el tanque origen.
type Ship struct {
	SourceTankID string
}

// Transfer traslado de origen a destino (distintos).
type Transfer struct {
	SourceTankID      string
	DestinationTankID string
}

func (Receive) Type() MovementType  { return MovementTypeReceive }
func (Ship) Type() MovementType     { return MovementTypeShip }
func (Transfer) Type() MovementType { return MovementTypeTransfer }

func (Receive) isFlow()  {}
func (Ship) isFlow()     {}
func (Transfer) isFlow() {}

// Movement movimiento programado o completado. Date != nil marca el movimiento como completado.
type Movement struct {
	ID             string
	Flow           Flow
	Date           *time.Time
	ScheduledDate  time.Time
	ExpectedVolume decimal.Decimal
	ActualVolume   decimal.NullDecimal
	Properties     []PropertyValue
	Carrier        string
	TicketNumber   string
	Notes          string
	PDFPath        string
	CreatedAt      time.Time
	CreatedBy      string
}

// Type devuelve el tipo según la variante de Flow ("" si no hay flujo).
func (m Movement) Type() MovementType {
	if m.Flow == nil {
		return ""
	}
	return m.Flow.Type()
}

// IsCompleted indica si el movimiento ya afectó el estado asentado de los tanques.
func (m Movement) IsCompleted() bool {
	return m.Date != nil
}

// EffectiveVolume volumen real si existe, si no el esperado.
func (m Movement) EffectiveVolume() decimal.Decimal {
	if m.ActualVolume.Valid {
		return m.ActualVolume.Decimal
	}
	return m.ExpectedVolume
}

// SourceTankID devuelve el tanque origen o "" (receive).
func (m Movement) SourceTankID() string {
	switch f := m.Flow.(type) {
	case Ship:
		return f.SourceTankID
	case Transfer:
		return f.SourceTankID
	}
	return ""
}

// DestinationTankID devuelve el tanque destino o "" (ship).
func (m Movement) DestinationTankID() string {
	switch f := m.Flow.(type) {
	case Receive:
		return f.DestinationTankID
	case Transfer:
		return f.DestinationTankID
	}
	return ""
}

// Involves indica si el tanque es origen o destino del movimiento.
func (m Movement) Involves(tankID string) bool {
	return tankID != "" && (m.SourceTankID() == tankID || m.DestinationTankID() == tankID)
}

// NewFlow construye la variante a partir de la forma plana (tipo + ids opcionales).
// Si la combinación es inválida devuelve un ValidationError con los campos afectados.
func NewFlow(t MovementType, sourceTankID, destinationTankID string) (Flow, error) {
	verr := &domain.ValidationError{}
	switch t {
	case MovementTypeReceive:
		if destinationTankID == "" {
			verr.Add("destination_tank_id", "el tanque destino es obligatorio para entradas")
			break
		}
		return Receive{DestinationTankID: destinationTankID}, nil
	case MovementTypeShip:
		if sourceTankID == "" {
			verr.Add("source_tank_id", "el tanque origen es obligatorio para despachos")
			break
		}
		return Ship{SourceTankID: sourceTankID}, nil
	case MovementTypeTransfer:
		if sourceTankID == "" {
			verr.Add("source_tank_id", "el tanque origen es obligatorio para traslados")
		}
		if destinationTankID == "" {
			verr.Add("destination_tank_id", "el tanque destino es obligatorio para traslados")
		} else if sourceTankID == destinationTankID {
			verr.Add("destination_tank_id", "origen y destino deben ser distintos")
		}
		if !verr.HasErrors() {
			return Transfer{SourceTankID: sourceTankID, DestinationTankID: destinationTankID}, nil
		}
	default:
		verr.Add("type", "tipo de movimiento inválido")
	}
	return nil, verr
}
