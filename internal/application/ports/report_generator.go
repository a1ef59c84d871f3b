package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TankReport datos ya resueltos para el reporte de un tanque (nombres de propiedades,
// cambios por movimiento); el generador solo los dibuja.
type TankReport struct {
	TankName        string
	Product         string
	Location        string
	CurrentVolume   decimal.Decimal
	ProjectedVolume decimal.Decimal
	Properties      []TankReportProperty
	Movements       []TankReportMovement
	GeneratedAt     time.Time
}

// TankReportProperty fila de la tabla de propiedades. nil = no medido.
type TankReportProperty struct {
	Name      string
	Unit      string
	Current   *decimal.Decimal
	Projected *decimal.Decimal
}

// TankReportMovement fila de la tabla de movimientos pendientes.
type TankReportMovement struct {
	ScheduledDate time.Time
	Type          string
	Counterpart   string
	Volume        decimal.Decimal
	Change        decimal.Decimal
	Carrier       string
}

// TankReportGenerator define el puerto de salida que renderiza el reporte en PDF.
type TankReportGenerator interface {
	GenerateTankReport(ctx context.Context, report TankReport) ([]byte, error)
}
