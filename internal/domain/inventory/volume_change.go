package inventory

import (
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// VolumeChange devuelve cuánto suma (positivo) o resta (negativo) el movimiento al
// volumen del tanque indicado, usando el volumen efectivo. 0 si el tanque no participa.
// Listado, proyección y gráfica de nivel usan esta misma función.
func VolumeChange(m entity.Movement, tankID string) decimal.Decimal {
	v := m.EffectiveVolume()
	switch f := m.Flow.(type) {
	case entity.Receive:
		if f.DestinationTankID == tankID {
			return v
		}
	case entity.Ship:
		if f.SourceTankID == tankID {
			return v.Neg()
		}
	case entity.Transfer:
		if f.SourceTankID == tankID {
			return v.Neg()
		}
		if f.DestinationTankID == tankID {
			return v
		}
	}
	return decimal.Zero
}
