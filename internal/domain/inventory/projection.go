package inventory

import (
	"sort"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Projection estado estimado de un tanque después de aplicar sus movimientos pendientes.
type Projection struct {
	Volume     decimal.Decimal
	Properties []entity.PropertyValue
}

// Project aplica los movimientos pendientes en orden cronológico (ScheduledDate ascendente,
// orden de entrada para fechas iguales) sobre una copia del estado del tanque.
// No valida movimientos: los que no involucran al tanque no tienen efecto.
func Project(tank entity.Tank, pending []entity.Movement) Projection {
	state := Projection{
		Volume:     tank.CurrentVolume,
		Properties: entity.CloneProperties(tank.Properties),
	}
	for _, m := range sortedBySchedule(pending) {
		state = step(state, m, tank.ID)
	}
	state.Volume = state.Volume.Round(RoundPlaces)
	return state
}

// PendingFor filtra los movimientos no completados que involucran al tanque.
func PendingFor(tankID string, movements []entity.Movement) []entity.Movement {
	out := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if !m.IsCompleted() && m.Involves(tankID) {
			out = append(out, m)
		}
	}
	return out
}

// step aplica un movimiento al estado proyectado del tanque.
func step(state Projection, m entity.Movement, tankID string) Projection {
	v := m.EffectiveVolume()
	switch f := m.Flow.(type) {
	case entity.Receive:
		if f.DestinationTankID == tankID {
			return inflow(state, v, m.Properties)
		}
	case entity.Ship:
		if f.SourceTankID == tankID {
			return outflow(state, v)
		}
	case entity.Transfer:
		if f.SourceTankID == tankID {
			return outflow(state, v)
		}
		if f.DestinationTankID == tankID {
			return inflow(state, v, m.Properties)
		}
	}
	return state
}

func inflow(state Projection, v decimal.Decimal, props []entity.PropertyValue) Projection {
	return Projection{
		Properties: Blend(state.Volume, state.Properties, v, props),
		Volume:     state.Volume.Add(v),
	}
}

// outflow descuenta volumen sin bajar de cero; la composición restante no cambia.
func outflow(state Projection, v decimal.Decimal) Projection {
	state.Volume = decimal.Max(decimal.Zero, state.Volume.Sub(v))
	return state
}

func sortedBySchedule(movements []entity.Movement) []entity.Movement {
	sorted := make([]entity.Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledDate.Before(sorted[j].ScheduledDate)
	})
	return sorted
}
