package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChamberRequest entrada para crear una cámara.
type CreateChamberRequest struct {
	Name     string          `json:"name"`
	Capacity decimal.Decimal `json:"capacity"`
	Tag      string          `json:"tag"` // dry, frozen
}

// UpdateChamberRequest entrada para actualizar una cámara (campos opcionales).
type UpdateChamberRequest struct {
	Name     *string          `json:"name"`
	Capacity *decimal.Decimal `json:"capacity"`
	Tag      *string          `json:"tag"`
}

// ChamberResponse salida de una cámara.
type ChamberResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Capacity  decimal.Decimal `json:"capacity"`
	Tag       string          `json:"tag"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChamberListResponse lista paginada de cámaras.
type ChamberListResponse struct {
	Items []ChamberResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
