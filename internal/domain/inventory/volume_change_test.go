package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/inventory"
)

func TestVolumeChange_Tabla(t *testing.T) {
	cases := []struct {
		name string
		mov  entity.Movement
		tank string
		want string
	}{
		{"entrada al destino", receive("m", "A", "100", dayN(0)), "A", "100"},
		{"entrada a otro tanque", receive("m", "B", "100", dayN(0)), "A", "0"},
		{"despacho desde origen", ship("m", "A", "40", dayN(0)), "A", "-40"},
		{"despacho desde otro tanque", ship("m", "B", "40", dayN(0)), "A", "0"},
		{"traslado visto desde origen", transfer("m", "A", "B", "25", dayN(0)), "A", "-25"},
		{"traslado visto desde destino", transfer("m", "A", "B", "25", dayN(0)), "B", "25"},
		{"traslado sin relación", transfer("m", "A", "B", "25", dayN(0)), "C", "0"},
		{"sin flujo", entity.Movement{ExpectedVolume: d("10")}, "A", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDecimal(t, tc.want, inventory.VolumeChange(tc.mov, tc.tank))
		})
	}
}

func TestVolumeChange_UsaVolumenReal(t *testing.T) {
	m := ship("m", "A", "40", dayN(0))
	m.ActualVolume = decimal.NewNullDecimal(d("38.5"))
	got := inventory.VolumeChange(m, "A")
	assertDecimal(t, "-38.5", got)
	assert.True(t, got.IsNegative(), "un despacho desde el tanque debe ser estrictamente negativo")
}

func TestVolumeChange_TanqueAjenoEsCeroExacto(t *testing.T) {
	got := inventory.VolumeChange(ship("m", "A", "40", dayN(0)), "Z")
	assert.True(t, got.IsZero())
}
