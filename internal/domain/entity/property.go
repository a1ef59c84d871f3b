package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyDefinition propiedad medible del catálogo (ej. API en grados, Azufre en %).
type PropertyDefinition struct {
	ID        string
	Name      string
	Unit      string
	CreatedAt time.Time
}

// PropertyValue valor medido de una propiedad en un tanque o movimiento.
// Value inválido (Valid=false) significa "no medido".
type PropertyValue struct {
	PropertyID string              `json:"propertyId"`
	Value      decimal.NullDecimal `json:"value"`
}

// MeasuredValue construye un PropertyValue con valor.
func MeasuredValue(propertyID string, v decimal.Decimal) PropertyValue {
	return PropertyValue{PropertyID: propertyID, Value: decimal.NewNullDecimal(v)}
}

// UnmeasuredValue construye un PropertyValue sin valor.
func UnmeasuredValue(propertyID string) PropertyValue {
	return PropertyValue{PropertyID: propertyID}
}

// CloneProperties copia la colección para que el llamador no comparta el arreglo subyacente.
func CloneProperties(in []PropertyValue) []PropertyValue {
	if in == nil {
		return []PropertyValue{}
	}
	out := make([]PropertyValue, len(in))
	copy(out, in)
	return out
}

// FindProperty devuelve la primera ocurrencia de propertyID.
func FindProperty(values []PropertyValue, propertyID string) (PropertyValue, bool) {
	for _, v := range values {
		if v.PropertyID == propertyID {
			return v, true
		}
	}
	return PropertyValue{}, false
}
