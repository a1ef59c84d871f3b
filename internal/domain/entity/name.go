package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameKey clave de unicidad de un nombre: sin espacios laterales y con case folding Unicode,
// así "Tank 1", "tank 1" y "TANK 1 " colisionan.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
