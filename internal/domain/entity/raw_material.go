package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterialPurchase es la compra de materia prima a un proveedor, guardada en una cámara.
type RawMaterialPurchase struct {
	ID             string
	Vendor         string
	Item           string
	ChamberID      string
	ContainerCount int
	ContainerSize  decimal.Decimal
	ContainerUnit  string
	Kilograms      decimal.Decimal // ContainerCount * tamaño normalizado a kg
	CreatedAt      time.Time
}

// RMChamberSource es el aporte de una cámara de materia prima a una corrida de producción.
type RMChamberSource struct {
	ChamberID      string          `json:"chamber_id"`
	ContainerCount int             `json:"container_count"`
	ContainerSize  decimal.Decimal `json:"container_size"`
	ContainerUnit  string          `json:"container_unit"`
	KgUsed         decimal.Decimal `json:"kg_used"`
}
