package dto

// CreateProductRequest body de POST /api/products.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Unit     string `json:"unit"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"current_stock"`
}
