package inventory

import (
	"sort"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// Sign pista de presentación para el neto de una categoría.
type Sign int

const (
	SignZero     Sign = 0
	SignPositive Sign = 1
	SignNegative Sign = -1
)

// CategoryFlow entradas y salidas brutas de una categoría.
type CategoryFlow struct {
	Category string
	In       int
	Out      int
}

// Net In - Out.
func (f CategoryFlow) Net() int { return f.In - f.Out }

// Sign signo del neto.
func (f CategoryFlow) Sign() Sign {
	switch n := f.Net(); {
	case n > 0:
		return SignPositive
	case n < 0:
		return SignNegative
	}
	return SignZero
}

// CategoryRollup agrupa por categoría en orden de primera aparición.
// La suma de In y Out de todas las filas coincide con Summarize sobre el mismo conjunto.
func CategoryRollup(movs []*entity.StockMovement) []CategoryFlow {
	idx := make(map[string]int)
	var out []CategoryFlow
	for _, m := range movs {
		if !m.Type.Valid() {
			continue
		}
		name := m.Category.Name()
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, CategoryFlow{Category: name})
		}
		switch m.Type {
		case entity.MovementTypeIN:
			out[i].In += m.Nos
		case entity.MovementTypeOUT:
			out[i].Out += m.Nos
		}
	}
	return out
}

// SortByDateDesc devuelve una copia ordenada por fecha descendente.
// Con fechas iguales se conserva el orden recibido (el almacenamiento guarda primero lo más reciente).
func SortByDateDesc(movs []*entity.StockMovement) []*entity.StockMovement {
	out := make([]*entity.StockMovement, len(movs))
	copy(out, movs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
