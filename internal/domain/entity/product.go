package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageSize es una presentación disponible de un producto (SKU = tamaño + unidad).
type PackageSize struct {
	Size  decimal.Decimal `json:"size"`
	Unit  string          `json:"unit"`  // gm, kg
	Count int             `json:"count"` // paquetes actualmente en existencia
}

// Product representa un producto terminado que se empaca a partir de una materia prima.
type Product struct {
	ID           string
	Name         string
	RawMaterial  string // ítem de materia prima que consume (clave en chamber_stock)
	PackageType  string // pouch, bag, box
	PackageSizes []PackageSize
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
