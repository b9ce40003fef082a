package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Customer representa un partner comercial al que se asocian movimientos.
type Customer struct {
	ID   string
	Name string // siempre en mayúsculas
}

// NormalizeName recorta espacios y pasa a mayúsculas (nombres, categorías, remarks).
func NormalizeName(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
