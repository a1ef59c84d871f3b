package inventory

import (
	"time"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Settle aplica un movimiento completado al estado asentado de los tanques.
// source/destination pueden ser nil si el tanque ya no existe; en ese caso se omiten.
// En un traslado sin análisis propio el producto llega con las propiedades del tanque origen.
func Settle(m entity.Movement, source, destination *entity.Tank, now time.Time) {
	v := m.EffectiveVolume()
	switch m.Flow.(type) {
	case entity.Receive:
		if destination != nil {
			fill(destination, v, m.Properties, now)
		}
	case entity.Ship:
		if source != nil {
			drain(source, v, now)
		}
	case entity.Transfer:
		if source == nil {
			return
		}
		props := m.Properties
		if len(props) == 0 {
			props = source.Properties
		}
		drain(source, v, now)
		if destination != nil {
			fill(destination, v, props, now)
		}
	}
}

func fill(t *entity.Tank, v decimal.Decimal, props []entity.PropertyValue, now time.Time) {
	t.Properties = Blend(t.CurrentVolume, t.Properties, v, props)
	t.CurrentVolume = t.CurrentVolume.Add(v)
	t.UpdatedAt = now
}

func drain(t *entity.Tank, v decimal.Decimal, now time.Time) {
	t.CurrentVolume = decimal.Max(decimal.Zero, t.CurrentVolume.Sub(v))
	t.UpdatedAt = now
}
