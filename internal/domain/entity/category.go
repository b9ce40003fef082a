package entity

import "strings"

// CategoryOthers es el valor de escape del formulario: el operador escribe texto libre.
const CategoryOthers = "OTHERS"

// fixedCategories lista fija de categorías del almacén (orden de presentación).
var fixedCategories = []string{
	"LAPTOP",
	"RF MOBILE",
	"NEW MOBILE",
	"BURKA",
	"GAME",
	"FACE-CREAM",
	"CPU",
}

// Category es una variante etiquetada: Known (de la lista fija) o Custom (texto libre).
// El valor cero no es válido; usar ParseCategory, KnownCategory o CustomCategory.
type Category struct {
	name  string
	known bool
}

// ParseCategory normaliza (trim + mayúsculas) y clasifica el valor recibido.
// Cualquier valor fuera de la lista fija, incluido "OTHERS", es Custom.
func ParseCategory(s string) Category {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range fixedCategories {
		if c == name {
			return Category{name: name, known: true}
		}
	}
	return Category{name: name}
}

// KnownCategory construye una categoría de la lista fija. ok=false si no pertenece a ella.
func KnownCategory(name string) (Category, bool) {
	c := ParseCategory(name)
	return c, c.known
}

// CustomCategory construye una categoría de texto libre aunque coincida con la lista fija.
func CustomCategory(text string) Category {
	return Category{name: strings.ToUpper(strings.TrimSpace(text))}
}

// KnownCategories devuelve la lista fija sin el valor de escape.
func KnownCategories() []Category {
	out := make([]Category, 0, len(fixedCategories))
	for _, c := range fixedCategories {
		out = append(out, Category{name: c, known: true})
	}
	return out
}

// CategoryOptions devuelve los nombres que ofrece el formulario (lista fija + OTHERS).
func CategoryOptions() []string {
	out := make([]string, 0, len(fixedCategories)+1)
	out = append(out, fixedCategories...)
	return append(out, CategoryOthers)
}

// Name devuelve el nombre normalizado.
func (c Category) Name() string { return c.name }

// IsKnown indica si la categoría pertenece a la lista fija.
func (c Category) IsKnown() bool { return c.known }

// IsZero indica si no se eligió categoría.
func (c Category) IsZero() bool { return c.name == "" }

func (c Category) String() string { return c.name }
