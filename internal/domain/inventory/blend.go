package inventory

import (
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RoundPlaces decimales de volúmenes y propiedades derivadas.
// decimal.Round redondea la mitad alejándose de cero (2.0005 -> 2.001, -2.0005 -> -2.001).
const RoundPlaces = 3

// Blend calcula las propiedades resultantes de mezclar addedVolume (con addedValues)
// dentro de baseVolume (con baseValues), promediando cada propiedad por volumen:
//
//	Nuevo = ((VolBase * ValorBase) + (VolEntrada * ValorEntrada)) / (VolBase + VolEntrada)
//
// Si un lado no midió la propiedad, el valor del otro lado se diluye en el volumen total.
// El resultado sigue el orden de primera aparición (base y luego entrada); ante ids
// duplicados dentro de una misma colección gana la primera ocurrencia.
func Blend(baseVolume decimal.Decimal, baseValues []entity.PropertyValue, addedVolume decimal.Decimal, addedValues []entity.PropertyValue) []entity.PropertyValue {
	total := baseVolume.Add(addedVolume)
	if total.IsZero() {
		if len(addedValues) > 0 {
			return entity.CloneProperties(addedValues)
		}
		return entity.CloneProperties(baseValues)
	}

	var ids []string
	seen := make(map[string]bool, len(baseValues)+len(addedValues))
	base := indexValues(baseValues, seen, &ids)
	added := indexValues(addedValues, seen, &ids)

	out := make([]entity.PropertyValue, 0, len(ids))
	for _, id := range ids {
		b, a := base[id], added[id]
		var num decimal.Decimal
		switch {
		case b.Valid && a.Valid:
			num = baseVolume.Mul(b.Decimal).Add(addedVolume.Mul(a.Decimal))
		case b.Valid && baseVolume.IsPositive():
			num = baseVolume.Mul(b.Decimal)
		case a.Valid && addedVolume.IsPositive():
			num = addedVolume.Mul(a.Decimal)
		default:
			out = append(out, entity.UnmeasuredValue(id))
			continue
		}
		out = append(out, entity.MeasuredValue(id, num.Div(total).Round(RoundPlaces)))
	}
	return out
}

// indexValues arma el lookup id -> valor (primera ocurrencia) y agrega a ids los no vistos.
func indexValues(values []entity.PropertyValue, seen map[string]bool, ids *[]string) map[string]decimal.NullDecimal {
	m := make(map[string]decimal.NullDecimal, len(values))
	for _, v := range values {
		if _, dup := m[v.PropertyID]; dup {
			continue
		}
		m[v.PropertyID] = v.Value
		if !seen[v.PropertyID] {
			seen[v.PropertyID] = true
			*ids = append(*ids, v.PropertyID)
		}
	}
	return m
}
