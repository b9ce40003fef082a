package entity

import "time"

// Product representa un artículo del catálogo. No se vincula a los movimientos.
type Product struct {
	ID           string
	Name         string
	Category     string
	Unit         string // PCS por defecto
	CurrentStock int
	CreatedAt    time.Time
}

// DefaultUnit unidad por defecto de un producto nuevo.
const DefaultUnit = "PCS"
