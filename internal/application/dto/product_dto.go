package dto

import (
	"time"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto con sus presentaciones.
type CreateProductRequest struct {
	Name         string               `json:"name"`
	RawMaterial  string               `json:"raw_material"`
	PackageType  string               `json:"package_type"` // pouch, bag, box
	PackageSizes []entity.PackageSize `json:"package_sizes"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	RawMaterial  string               `json:"raw_material"`
	PackageType  string               `json:"package_type"`
	PackageSizes []entity.PackageSize `json:"package_sizes"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
