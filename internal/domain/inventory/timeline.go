package inventory

import (
	"time"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TimelinePoint punto de la gráfica de nivel de un tanque.
type TimelinePoint struct {
	Date       time.Time
	Volume     decimal.Decimal
	Change     decimal.Decimal
	MovementID string
	Projected  bool
}

// Timeline construye la serie de nivel desde el día de from hasta from+horizonDays:
// un punto inicial con el volumen actual, un punto por movimiento pendiente que cambie
// el volumen del tanque y un punto final en el horizonte si el último no cae ese día.
// El volumen acumulado no baja de cero, igual que en Project.
func Timeline(tank entity.Tank, movements []entity.Movement, from time.Time, horizonDays int) []TimelinePoint {
	start := day(from)
	end := start.AddDate(0, 0, horizonDays)

	points := []TimelinePoint{{Date: start, Volume: tank.CurrentVolume, Change: decimal.Zero}}

	scheduled := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m.IsCompleted() || day(m.ScheduledDate).After(end) {
			continue
		}
		scheduled = append(scheduled, m)
	}

	volume := tank.CurrentVolume
	for _, m := range sortedBySchedule(scheduled) {
		change := VolumeChange(m, tank.ID)
		if change.IsZero() {
			continue
		}
		volume = decimal.Max(decimal.Zero, volume.Add(change))
		points = append(points, TimelinePoint{
			Date:       day(m.ScheduledDate),
			Volume:     volume.Round(RoundPlaces),
			Change:     change,
			MovementID: m.ID,
			Projected:  true,
		})
	}

	if last := points[len(points)-1]; !last.Date.Equal(end) {
		points = append(points, TimelinePoint{
			Date:      end,
			Volume:    volume.Round(RoundPlaces),
			Change:    decimal.Zero,
			Projected: true,
		})
	}
	return points
}

func day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
