// Package pdf implementa el reporte de estado proyectado de un tanque en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tanque + Producto   │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VOLÚMENES: actual / proyectado (kbbl)                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Propiedad | Unidad | Actual | Proyectado             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Contraparte | Volumen | Cambio        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tank-inventory-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.TankReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.TankReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateTankReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateTankReport(_ context.Context, report ports.TankReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado proyectado de tanque", true).
		WithAuthor("tank-inventory", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(volumesRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PROPIEDADES"))
	m.AddRows(propertyHeaderRow())
	m.AddRows(propertyRows(report.Properties)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("MOVIMIENTOS PENDIENTES"))
	if len(report.Movements) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Sin movimientos pendientes.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	} else {
		m.AddRows(movementHeaderRow())
		m.AddRows(movementRows(report.Movements)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tanque + producto (izq) y fecha de generación (der).
func headerRow(r ports.TankReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.TankName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto: %s   |   Ubicación: %s",
				nonEmpty(r.Product, "—"),
				nonEmpty(r.Location, "—"),
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("REPORTE DE ESTADO PROYECTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// volumesRow: volumen asentado y proyectado.
func volumesRow(r ports.TankReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1})
	}
	return row.New(10).Add(
		col.New(3).Add(label("Volumen actual:")),
		col.New(3).Add(value(r.CurrentVolume.StringFixed(3)+" kbbl")),
		col.New(3).Add(label("Volumen proyectado:")),
		col.New(3).Add(value(r.ProjectedVolume.StringFixed(3)+" kbbl")),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

// headerCell celda de cabecera de tabla con fondo azul.
func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func tableHeader(cols ...core.Col) core.Row {
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

func propertyHeaderRow() core.Row {
	return tableHeader(
		headerCell("Propiedad", 5, align.Left),
		headerCell("Unidad", 2, align.Center),
		headerCell("Actual", 2, align.Right),
		headerCell("Proyectado", 3, align.Right),
	)
}

// propertyRows: una fila por propiedad definida; "—" si no está medida.
func propertyRows(list []ports.TankReportProperty) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, p := range list {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(p.Unit, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatOptional(p.Current), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatOptional(p.Projected), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func movementHeaderRow() core.Row {
	return tableHeader(
		headerCell("Fecha", 2, align.Left),
		headerCell("Tipo", 2, align.Left),
		headerCell("Contraparte", 3, align.Left),
		headerCell("Volumen", 2, align.Right),
		headerCell("Cambio", 3, align.Right),
	)
}

// movementRows: movimientos pendientes en orden de ejecución.
func movementRows(movs []ports.TankReportMovement) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, mv := range movs {
		counterpart := nonEmpty(mv.Counterpart, "—")
		if mv.Carrier != "" {
			counterpart += " (" + mv.Carrier + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(mv.ScheduledDate.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(movementLabel(mv.Type), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(counterpart, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(mv.Volume.StringFixed(3), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(signed(mv.Change), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatOptional(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return d.StringFixed(3)
}

// signed antepone "+" a los cambios positivos.
func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(3)
	}
	return d.StringFixed(3)
}

func movementLabel(t string) string {
	switch t {
	case "receive":
		return "Entrada"
	case "ship":
		return "Despacho"
	case "transfer":
		return "Traslado"
	}
	return t
}
