package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/application/ports"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

// Projector entrega el estado proyectado de un tanque.
type Projector interface {
	ProjectTank(ctx context.Context, tankID string) (*dto.ProjectionResponse, error)
}

// TankReportUseCase genera el reporte PDF de un tanque: estado actual, proyectado y movimientos pendientes.
type TankReportUseCase struct {
	tankRepo     repository.TankRepository
	propertyRepo repository.PropertyRepository
	projector    Projector
	generator    ports.TankReportGenerator
	now          func() time.Time
}

// NewTankReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewTankReportUseCase(
	tankRepo repository.TankRepository,
	propertyRepo repository.PropertyRepository,
	projector Projector,
	generator ports.TankReportGenerator,
) *TankReportUseCase {
	return &TankReportUseCase{
		tankRepo:     tankRepo,
		propertyRepo: propertyRepo,
		projector:    projector,
		generator:    generator,
		now:          time.Now,
	}
}

// Generate arma los datos del reporte y devuelve el PDF con un nombre de archivo sugerido.
func (uc *TankReportUseCase) Generate(ctx context.Context, tankID string) (pdfBytes []byte, filename string, err error) {
	tank, err := uc.tankRepo.GetByID(ctx, tankID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener tanque: %w", err)
	}
	if tank == nil {
		return nil, "", domain.ErrNotFound
	}
	projection, err := uc.projector.ProjectTank(ctx, tankID)
	if err != nil {
		return nil, "", err
	}
	catalog, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener propiedades: %w", err)
	}
	names := make(map[string][2]string, len(catalog))
	for _, p := range catalog {
		names[p.ID] = [2]string{p.Name, p.Unit}
	}

	data := ports.TankReport{
		TankName:        tank.Name,
		Product:         tank.Product,
		Location:        tank.Location,
		CurrentVolume:   projection.CurrentVolume,
		ProjectedVolume: projection.ProjectedVolume,
		Properties:      propertyRows(projection, names),
		GeneratedAt:     uc.now(),
	}
	for _, m := range projection.PendingMovements {
		row := ports.TankReportMovement{
			ScheduledDate: m.ScheduledDate,
			Type:          m.Type,
			Counterpart:   counterpart(m, tankID),
			Volume:        m.EffectiveVolume,
			Carrier:       m.Carrier,
		}
		if m.VolumeChange != nil {
			row.Change = *m.VolumeChange
		}
		data.Movements = append(data.Movements, row)
	}

	pdf, err := uc.generator.GenerateTankReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("tank-%s-%s.pdf", slug(tank.Name), data.GeneratedAt.Format("20060102")), nil
}

// propertyRows une las propiedades actuales y proyectadas en orden de aparición.
func propertyRows(p *dto.ProjectionResponse, names map[string][2]string) []ports.TankReportProperty {
	var (
		rows  []ports.TankReportProperty
		index = map[string]int{}
	)
	add := func(values []dto.PropertyValueDTO, projected bool) {
		for _, v := range values {
			i, ok := index[v.PropertyID]
			if !ok {
				name, unit := v.PropertyID, ""
				if n, found := names[v.PropertyID]; found {
					name, unit = n[0], n[1]
				}
				rows = append(rows, ports.TankReportProperty{Name: name, Unit: unit})
				i = len(rows) - 1
				index[v.PropertyID] = i
			}
			if projected {
				rows[i].Projected = v.Value
			} else {
				rows[i].Current = v.Value
			}
		}
	}
	add(p.CurrentProperties, false)
	add(p.ProjectedProperties, true)
	return rows
}

func counterpart(m dto.MovementResponse, tankID string) string {
	switch {
	case m.SourceTankID != "" && m.SourceTankID != tankID:
		return m.SourceTankID
	case m.DestinationTankID != "" && m.DestinationTankID != tankID:
		return m.DestinationTankID
	}
	return ""
}

func slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

