package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pv(id, value string) entity.PropertyValue {
	return entity.MeasuredValue(id, d(value))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

// assertValue verifica el valor de una propiedad; want "" significa no medido.
func assertValue(t *testing.T, values []entity.PropertyValue, id, want string) {
	t.Helper()
	v, ok := entity.FindProperty(values, id)
	require.True(t, ok, "la propiedad %s debe estar presente", id)
	if want == "" {
		assert.False(t, v.Value.Valid, "la propiedad %s no debe tener valor", id)
		return
	}
	require.True(t, v.Value.Valid, "la propiedad %s debe tener valor", id)
	assertDecimal(t, want, v.Value.Decimal)
}

func dayN(n int) time.Time {
	return time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func receive(id, dest, volume string, when time.Time, props ...entity.PropertyValue) entity.Movement {
	return entity.Movement{ID: id, Flow: entity.Receive{DestinationTankID: dest}, ScheduledDate: when, ExpectedVolume: d(volume), Properties: props}
}

func ship(id, source, volume string, when time.Time) entity.Movement {
	return entity.Movement{ID: id, Flow: entity.Ship{SourceTankID: source}, ScheduledDate: when, ExpectedVolume: d(volume)}
}

func transfer(id, source, dest, volume string, when time.Time, props ...entity.PropertyValue) entity.Movement {
	return entity.Movement{
		ID:             id,
		Flow:           entity.Transfer{SourceTankID: source, DestinationTankID: dest},
		ScheduledDate:  when,
		ExpectedVolume: d(volume),
		Properties:     props,
	}
}
