package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProduct producto asignado a un tanque nuevo si no se indica otro.
const DefaultProduct = "Carbon Black Oil"

// Tank representa un tanque de almacenamiento. CurrentVolume (kilo-barriles) y
// Properties son el estado asentado: solo cambian por movimientos completados o por reset.
type Tank struct {
	ID            string
	Name          string
	Product       string
	Location      string
	CurrentVolume decimal.Decimal
	Properties    []PropertyValue
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone devuelve una copia independiente del tanque.
func (t Tank) Clone() Tank {
	t.Properties = CloneProperties(t.Properties)
	return t
}
